// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"job_hunter/internal/api"
	"job_hunter/internal/feature/auth/domain/entity"
	"job_hunter/internal/feature/auth/transport/http/dto"
	"job_hunter/internal/feature/auth/usecase"
	jwtmw "job_hunter/internal/platform/jwt"
)

// AuthUsecase defines the auth operations the handlers depend on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, email, password, name string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	ChangePassword(ctx context.Context, user *entity.User, currentPassword, newPassword string) error
	UpdateProfile(ctx context.Context, user *entity.User, in usecase.ProfileUpdate) (*entity.User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// AuthHandler handles HTTP requests for registration, login, the password
// lifecycle and the user profile.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /users/register.
// - 400 with the full violation list on a bad body
// - 400 with a specific message on a duplicate email
// - 201 with the user and a session token on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email already registered"})
			return
		}
		slog.Error("registration failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Error creating user"})
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{User: user, Token: token})
}

// Login handles POST /users/login. Failures stay uniform regardless of
// whether the email exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Error logging in"})
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{User: user, Token: token})
}

// ChangePassword handles PUT /users/change-password for the current user.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
		return
	}

	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), user, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, usecase.ErrCurrentPasswordMismatch) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Current password is incorrect"})
			return
		}
		slog.Error("change password failed", "user_id", user.ID, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Error changing password"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Password updated successfully"})
}

// GetProfile handles GET /users/profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
		return
	}
	c.JSON(http.StatusOK, dto.UserRes{User: user})
}

// UpdateProfile handles PUT /users/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	updated, err := h.auth.UpdateProfile(c.Request.Context(), user, usecase.ProfileUpdate{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Location:       req.Location,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		SocialLinks:    req.SocialLinks,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Email already registered"})
			return
		}
		slog.Error("profile update failed", "user_id", user.ID, "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Error updating user"})
		return
	}

	c.JSON(http.StatusOK, dto.UserRes{User: updated})
}

// ForgotPassword handles POST /users/forgot-password. The generated token
// is returned in the body until outbound email delivery exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	token, err := h.auth.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
			return
		}
		slog.Error("forgot password failed", "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Error generating reset token"})
		return
	}

	c.JSON(http.StatusOK, dto.ForgotPasswordRes{
		Message:    "Password reset token generated",
		ResetToken: token,
	})
}

// ResetPassword handles POST /users/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if v := req.Validate(); len(v) > 0 {
		c.JSON(http.StatusBadRequest, api.NewValidationError(v))
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, usecase.ErrInvalidResetToken) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid or expired reset token"})
			return
		}
		slog.Error("reset password failed", "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Error resetting password"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Password reset successful"})
}
