package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/ideas
type IdeaHandler struct {
	uc *usecase.IdeaUsecase
}

// DI
func NewIdeaHandler(uc *usecase.IdeaUsecase) *IdeaHandler {
	return &IdeaHandler{uc: uc}
}

func (h *IdeaHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/ideas", h.list)
	g.POST("/ideas", h.create)
	g.PUT("/ideas/:id/rating", h.rate)
	g.PUT("/ideas/:id/favorite", h.favorite)
	g.GET("/ideas/export", h.export)
}

func (h *IdeaHandler) list(c echo.Context) error {
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

	out, err := h.uc.List(c.Request().Context(), usecase.ListIdeasInput{
		Page:      page,
		Limit:     limit,
		VideoID:   c.QueryParam("videoId"),
		ChannelID: c.QueryParam("channelId"),
		Category:  c.QueryParam("category"),
		Search:    c.QueryParam("search"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *IdeaHandler) create(c echo.Context) error {
	var req usecase.CreateIdeaInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	idea, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, idea)
}

type rateRequest struct {
	Rating int `json:"rating"`
}

func (h *IdeaHandler) rate(c echo.Context) error {
	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.UpdateRating(c.Request().Context(), c.Param("id"), req.Rating)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

type favoriteRequest struct {
	// 省略時はトグル
	IsFavorite *bool `json:"isFavorite"`
}

func (h *IdeaHandler) favorite(c echo.Context) error {
	var req favoriteRequest
	_ = c.Bind(&req)

	out, err := h.uc.SetFavorite(c.Request().Context(), c.Param("id"), req.IsFavorite)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *IdeaHandler) export(c echo.Context) error {
	out, err := h.uc.Export(c.Request().Context(), c.QueryParam("format"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
