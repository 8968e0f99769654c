// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mood_backend/internal/api"
	"mood_backend/internal/feature/auth/transport/http/dto"
	"mood_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	Signup(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /api/auth/signup.
//   - missing email/password or already registered email: 400
//   - store failure: 500
//   - success: 201
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email and password are required"})
		return
	}

	err := h.auth.Signup(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusCreated, api.MessageResponse{Message: "User registered successfully"})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email and password are required"})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		slog.Warn("signup rejected: email already registered", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "User already exists"})
	default:
		slog.Error("signup failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error"})
	}
}

// Login handles POST /api/auth/login.
//   - missing fields or unknown email: 400
//   - wrong password: 401
//   - store failure: 500
//   - success: 200
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email and password are required"})
		return
	}

	err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.LoginResponse{Message: "Login successful", Email: req.Email})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email and password are required"})
	case errors.Is(err, usecase.ErrUserNotFound):
		slog.Warn("login failed: unknown email", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "User not found"})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		slog.Warn("login failed: password mismatch", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid credentials"})
	default:
		slog.Error("login failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error"})
	}
}
