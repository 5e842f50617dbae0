package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"job_hunter/internal/app/router"
	"job_hunter/internal/config"
	actionadapters "job_hunter/internal/feature/actions/adapters"
	actionhandler "job_hunter/internal/feature/actions/transport/handler"
	actionusecase "job_hunter/internal/feature/actions/usecase"
	authadapters "job_hunter/internal/feature/auth/adapters"
	authhandler "job_hunter/internal/feature/auth/transport/handler"
	authusecase "job_hunter/internal/feature/auth/usecase"
	companyadapters "job_hunter/internal/feature/companies/adapters"
	companyhandler "job_hunter/internal/feature/companies/transport/handler"
	companyusecase "job_hunter/internal/feature/companies/usecase"
	jobadapters "job_hunter/internal/feature/jobs/adapters"
	jobhandler "job_hunter/internal/feature/jobs/transport/handler"
	jobusecase "job_hunter/internal/feature/jobs/usecase"
	"job_hunter/internal/platform/cache"
	platformdb "job_hunter/internal/platform/db"
	jwtmw "job_hunter/internal/platform/jwt"
	platformredis "job_hunter/internal/platform/redis"
	"job_hunter/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// db
	db := platformdb.OpenDB(cfg)

	// Redis is optional; without it the template catalog hits the DB.
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg.Redis); err != nil {
		slog.Warn("Redis unavailable, running without cache")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	jobRepo := jobadapters.NewJobGorm(db)
	actionRepo := actionadapters.NewActionGorm(db)
	templateRepo := actionadapters.NewTemplateGorm(db)
	companyRepo := companyadapters.NewCompanyGorm(db)

	cachedTemplateRepo := cache.NewCachingTemplateRepository(rdb, 5*time.Minute, templateRepo, "templates")

	// Usecase
	tokens := jwtmw.NewService(cfg.JWTSecret, cfg.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, cfg.BcryptCost, cfg.ResetTokenTTL)
	templateUC := actionusecase.NewTemplateUsecase(cachedTemplateRepo)
	actionUC := actionusecase.NewActionUsecase(actionRepo, cachedTemplateRepo)
	jobUC := jobusecase.NewJobUsecase(jobRepo, actionUC)
	companyUC := companyusecase.NewCompanyUsecase(companyRepo)

	if cfg.SeedTemplates {
		n, err := templateUC.Seed(context.Background())
		if err != nil {
			log.Fatalf("template seeding failed: %v", err)
		}
		if n > 0 {
			slog.Info("seeded default action templates", "count", n)
		}
	}

	// Handler
	handlers := router.Handlers{
		Auth:      authhandler.NewAuthHandler(authUC),
		Jobs:      jobhandler.NewJobHandler(jobUC),
		Actions:   actionhandler.NewActionHandler(actionUC, jobUC),
		Templates: actionhandler.NewTemplateHandler(templateUC),
		Companies: companyhandler.NewCompanyHandler(companyUC),
	}

	limiter := ratelimiter.NewRateLimiter(10, time.Minute)
	r := router.NewRouter(handlers, tokens, userRepo, limiter)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
