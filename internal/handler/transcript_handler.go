package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/transcripts
type TranscriptHandler struct {
	uc *usecase.TranscriptUsecase
}

// DI
func NewTranscriptHandler(uc *usecase.TranscriptUsecase) *TranscriptHandler {
	return &TranscriptHandler{uc: uc}
}

func (h *TranscriptHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/transcripts", h.list)
	g.GET("/transcripts/:id", h.detail)
	g.PUT("/transcripts/:id", h.update)
	g.GET("/transcripts/:id/export", h.export)
}

func (h *TranscriptHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 20）
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListTranscriptsInput{
		Page:      page,
		Limit:     limit,
		ChannelID: c.QueryParam("channelId"),
		Status:    c.QueryParam("status"),
		Search:    c.QueryParam("search"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *TranscriptHandler) detail(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

type updateTranscriptRequest struct {
	Content string `json:"content"`
}

func (h *TranscriptHandler) update(c echo.Context) error {
	var req updateTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.UpdateContent(c.Request().Context(), c.Param("id"), req.Content)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *TranscriptHandler) export(c echo.Context) error {
	out, err := h.uc.Export(c.Request().Context(), c.Param("id"), c.QueryParam("format"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
