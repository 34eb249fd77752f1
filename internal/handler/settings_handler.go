package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/settings（ユーザーごと）
type SettingsHandler struct {
	uc *usecase.SettingsUsecase
}

// DI
func NewSettingsHandler(uc *usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings", h.get)
	g.PUT("/settings", h.update)
}

func (h *SettingsHandler) get(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserIDKey).(string)

	out, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *SettingsHandler) update(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserIDKey).(string)

	var req usecase.UpdateSettingsInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.Update(c.Request().Context(), userID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
