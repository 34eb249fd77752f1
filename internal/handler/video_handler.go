package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/videos
type VideoHandler struct {
	uc *usecase.VideoUsecase
}

// DI
func NewVideoHandler(uc *usecase.VideoUsecase) *VideoHandler {
	return &VideoHandler{uc: uc}
}

func (h *VideoHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/videos", h.list)
	g.POST("/videos", h.create)
	g.POST("/videos/:id/transcript", h.generateTranscript)
	g.POST("/videos/:id/ideas", h.generateIdeas)
	g.POST("/videos/bulk/transcripts", h.bulkTranscripts)
	g.POST("/videos/bulk/ideas", h.bulkIdeas)
}

func (h *VideoHandler) list(c echo.Context) error {
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

	out, err := h.uc.List(c.Request().Context(), usecase.ListVideosInput{
		Page:             page,
		Limit:            limit,
		ChannelID:        c.QueryParam("channelId"),
		TranscriptStatus: c.QueryParam("transcriptStatus"),
		IdeasStatus:      c.QueryParam("ideasStatus"),
		Search:           c.QueryParam("search"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *VideoHandler) create(c echo.Context) error {
	var req usecase.CreateVideoInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	video, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, video)
}

func (h *VideoHandler) generateTranscript(c echo.Context) error {
	out, err := h.uc.GenerateTranscript(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *VideoHandler) generateIdeas(c echo.Context) error {
	out, err := h.uc.GenerateIdeas(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

type bulkRequest struct {
	VideoIDs []string `json:"videoIds"`
}

func (h *VideoHandler) bulkTranscripts(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.BulkGenerateTranscripts(c.Request().Context(), req.VideoIDs)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *VideoHandler) bulkIdeas(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.BulkGenerateIdeas(c.Request().Context(), req.VideoIDs)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
