package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/channels
type ChannelHandler struct {
	uc *usecase.ChannelUsecase
}

// DI
func NewChannelHandler(uc *usecase.ChannelUsecase) *ChannelHandler {
	return &ChannelHandler{uc: uc}
}

func (h *ChannelHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/channels", h.list)
	g.POST("/channels", h.add)
	g.DELETE("/channels/:id", h.remove)
	g.POST("/channels/:id/sync", h.sync)
}

func (h *ChannelHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

type addChannelRequest struct {
	URL string `json:"url"`
}

func (h *ChannelHandler) add(c echo.Context) error {
	var req addChannelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.Add(c.Request().Context(), req.URL)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *ChannelHandler) remove(c echo.Context) error {
	out, err := h.uc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ChannelHandler) sync(c echo.Context) error {
	out, err := h.uc.Sync(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
