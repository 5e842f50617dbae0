// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	actionhandler "job_hunter/internal/feature/actions/transport/handler"
	authhandler "job_hunter/internal/feature/auth/transport/handler"
	companyhandler "job_hunter/internal/feature/companies/transport/handler"
	jobhandler "job_hunter/internal/feature/jobs/transport/handler"
	"job_hunter/internal/platform/http/handler"
	jwtmw "job_hunter/internal/platform/jwt"
	"job_hunter/internal/shared/ratelimiter"
)

// Handlers bundles the feature handlers the router mounts.
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Jobs      *jobhandler.JobHandler
	Actions   *actionhandler.ActionHandler
	Templates *actionhandler.TemplateHandler
	Companies *companyhandler.CompanyHandler
}

// NewRouter builds the Gin engine with all routes mounted. The login and
// forgot-password endpoints go through the rate limiter; everything under
// the authenticated group requires a valid bearer token.
func NewRouter(h Handlers, tokens *jwtmw.Service, users jwtmw.UserLoader,
	limiter *ratelimiter.RateLimiter) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	r.GET("/", handler.Welcome)

	api := r.Group("/api")

	// No auth required
	api.POST("/users/register", h.Auth.Register)
	api.POST("/users/login", limiter.Middleware(), h.Auth.Login)
	api.POST("/users/forgot-password", limiter.Middleware(), h.Auth.ForgotPassword)
	api.POST("/users/reset-password", h.Auth.ResetPassword)
	// The template catalog is shared across users
	api.GET("/actions/templates", h.Templates.List)

	// Auth required
	auth := api.Group("/")
	auth.Use(jwtmw.AuthRequired(tokens, users))
	{
		auth.GET("/users/profile", h.Auth.GetProfile)
		auth.PUT("/users/profile", h.Auth.UpdateProfile)
		auth.PUT("/users/change-password", h.Auth.ChangePassword)

		auth.POST("/jobs/create", h.Jobs.Create)
		auth.GET("/jobs", h.Jobs.List)
		auth.GET("/jobs/:id", h.Jobs.GetByID)

		auth.POST("/actions", h.Actions.Create)
		auth.GET("/actions/job/:jobId", h.Actions.ListByJob)
		auth.GET("/actions/user", h.Actions.ListByUser)
		auth.PUT("/actions/:id", h.Actions.Update)
		auth.DELETE("/actions/:id", h.Actions.Delete)

		auth.POST("/actions/templates", h.Templates.Create)
		auth.PUT("/actions/templates/:id", h.Templates.Update)
		auth.DELETE("/actions/templates/:id", h.Templates.Delete)

		auth.POST("/companies", h.Companies.Create)
		auth.GET("/companies/:id", h.Companies.GetByID)
		auth.PUT("/companies/:id", h.Companies.Update)
	}

	return r
}
