package handler

import (
	"errors"
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 認証APIのエラー形式はクライアント契約に合わせてmessageで返す。
type MessageResponse struct {
	Message string `json:"message"`
}

type AuthHandler struct {
	uc     *usecase.AuthUsecase
	guard  echo.MiddlewareFunc
	limits []echo.MiddlewareFunc
}

// DI。guardは/auth/me用、limitsはlogin/registerのレート制限。
func NewAuthHandler(uc *usecase.AuthUsecase, guard echo.MiddlewareFunc, limits ...echo.MiddlewareFunc) *AuthHandler {
	return &AuthHandler{uc: uc, guard: guard, limits: limits}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/auth")
	g.POST("/register", h.register, h.limits...)
	g.POST("/login", h.login, h.limits...)
	g.POST("/logout", h.logout)
	g.POST("/refresh", h.refresh)
	g.GET("/me", h.me, h.guard)
}

type registerResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    usecase.UserDTO `json:"user"`
}

func (h *AuthHandler) register(c echo.Context) error {
	var req usecase.AuthRegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	user, err := h.uc.Register(c.Request().Context(), req)
	if err != nil {
		if he, ok := usecase.AsHTTPError(err); ok {
			return c.JSON(he.Status, MessageResponse{Message: he.Message})
		}
		return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Success: true,
		Message: "User registered successfully",
		User:    *user,
	})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req usecase.AuthLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	out, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials):
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Email and password are required"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Email or password is incorrect"})
		case errors.Is(err, usecase.ErrUserInactive):
			return c.JSON(http.StatusForbidden, MessageResponse{Message: "Account is inactive"})
		case errors.Is(err, usecase.ErrAuthUnavailable):
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Authentication service unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, out)
}

type logoutRequest struct {
	Email string `json:"email"`
}

// logoutは保存中のrefresh tokenを破棄する。
// アカウントの有無を漏らさないため常に200。
func (h *AuthHandler) logout(c echo.Context) error {
	var req logoutRequest
	_ = c.Bind(&req)

	h.uc.Logout(c.Request().Context(), req.Email)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	Success bool                 `json:"success"`
	Data    usecase.TokenPairDTO `json:"data"`
}

type refreshErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *AuthHandler) refresh(c echo.Context) error {
	var req refreshRequest
	_ = c.Bind(&req)

	pair, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRefreshMissing):
			return c.JSON(http.StatusUnauthorized, refreshErrorResponse{Message: "Refresh token is required"})
		case errors.Is(err, usecase.ErrRefreshExpired):
			//期限切れはinvalidと区別する（クライアントは再ログインへ誘導）
			return c.JSON(http.StatusForbidden, refreshErrorResponse{Message: "Refresh token has expired"})
		case errors.Is(err, usecase.ErrRefreshInvalid):
			return c.JSON(http.StatusForbidden, refreshErrorResponse{Message: "Invalid refresh token"})
		}
		return c.JSON(http.StatusInternalServerError, refreshErrorResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, refreshResponse{
		Success: true,
		Data:    *pair,
	})
}

type meResponse struct {
	User usecase.UserDTO `json:"user"`
}

func (h *AuthHandler) me(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserIDKey).(string)

	user, err := h.uc.Me(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized"})
	}

	return c.JSON(http.StatusOK, meResponse{User: *user})
}
