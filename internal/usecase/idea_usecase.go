package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type IdeaUsecase struct {
	cfg        config.Config
	ideas      repo.IdeaRepository
	videos     repo.VideoRepository
	activities repo.ActivityRepository
}

// DI
func NewIdeaUsecase(
	cfg config.Config,
	ideas repo.IdeaRepository,
	videos repo.VideoRepository,
	activities repo.ActivityRepository,
) *IdeaUsecase {
	return &IdeaUsecase{
		cfg:        cfg,
		ideas:      ideas,
		videos:     videos,
		activities: activities,
	}
}

type ListIdeasInput struct {
	Page      int
	Limit     int
	VideoID   string
	ChannelID string
	Category  string
	Search    string
}

type IdeaListOutput struct {
	Ideas      []model.Idea `json:"ideas"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
}

func (u *IdeaUsecase) List(ctx context.Context, in ListIdeasInput) (IdeaListOutput, error) {
	if in.Page < 1 {
		return IdeaListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return IdeaListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if in.Category != "" && !model.IdeaCategory(in.Category).Valid() {
		return IdeaListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	ideas, total, err := u.ideas.List(ctx, repo.IdeaListQuery{
		Page:      in.Page,
		Limit:     in.Limit,
		VideoID:   in.VideoID,
		ChannelID: in.ChannelID,
		Category:  in.Category,
		Search:    strings.TrimSpace(in.Search),
	})
	if err != nil {
		return IdeaListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totalPages := int((total + int64(in.Limit) - 1) / int64(in.Limit))

	return IdeaListOutput{
		Ideas:      ideas,
		Total:      total,
		Page:       in.Page,
		TotalPages: totalPages,
	}, nil
}

// POST /api/ideas の入力DTO（生成worker向け）。
type CreateIdeaInput struct {
	VideoID     string   `json:"videoId"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Createは生成workerが抽出したアイデアを登録する。
// 動画側のideasCountとstatusもここで進める。
func (u *IdeaUsecase) Create(ctx context.Context, in CreateIdeaInput) (model.Idea, error) {
	if strings.TrimSpace(in.Title) == "" {
		return model.Idea{}, NewHTTPError(http.StatusBadRequest, "title required")
	}
	if !model.IdeaCategory(in.Category).Valid() {
		return model.Idea{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	video, err := u.videos.FindByID(ctx, in.VideoID)
	if err != nil {
		if err == repo.ErrNotFound {
			return model.Idea{}, NewHTTPError(http.StatusNotFound, "video not found")
		}
		return model.Idea{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	idea, err := u.ideas.Create(ctx, model.Idea{
		ID:          uuid.NewString(),
		VideoID:     video.ID,
		VideoTitle:  video.Title,
		ChannelID:   video.ChannelID,
		ChannelName: video.ChannelName,
		Category:    model.IdeaCategory(in.Category),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Tags:        tags,
	})
	if err != nil {
		return model.Idea{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	firstForVideo := video.IdeasStatus != model.JobStatusCompleted

	video.IdeasCount++
	video.IdeasStatus = model.JobStatusCompleted
	_ = u.videos.Update(ctx, video)

	//その動画の初アイデアのときだけ履歴を残す
	if firstForVideo {
		_ = u.activities.Create(ctx, model.Activity{
			ID:         uuid.NewString(),
			Type:       model.ActivityIdeasGenerated,
			Message:    fmt.Sprintf("New ideas generated from %q", video.Title),
			ResourceID: video.ID,
		})
	}

	return idea, nil
}

func (u *IdeaUsecase) UpdateRating(ctx context.Context, ideaID string, rating int) (SuccessOutput, error) {
	if ideaID == "" {
		return SuccessOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idea id")
	}
	if rating < 1 || rating > 5 {
		return SuccessOutput{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	if err := u.ideas.UpdateRating(ctx, ideaID, rating); err != nil {
		if err == repo.ErrNotFound {
			return SuccessOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SuccessOutput{
		Success: true,
		Message: "Rating updated",
	}, nil
}

type FavoriteOutput struct {
	Success    bool `json:"success"`
	IsFavorite bool `json:"isFavorite"`
}

// SetFavoriteはお気に入りを更新する。setがnilなら現在値を反転。
func (u *IdeaUsecase) SetFavorite(ctx context.Context, ideaID string, set *bool) (FavoriteOutput, error) {
	if ideaID == "" {
		return FavoriteOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idea id")
	}

	idea, err := u.ideas.FindByID(ctx, ideaID)
	if err != nil {
		if err == repo.ErrNotFound {
			return FavoriteOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return FavoriteOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	next := !idea.IsFavorite
	if set != nil {
		next = *set
	}
	if err := u.ideas.UpdateFavorite(ctx, ideaID, next); err != nil {
		return FavoriteOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return FavoriteOutput{
		Success:    true,
		IsFavorite: next,
	}, nil
}

// Exportはアイデア一覧のダウンロード先URLを返すだけ。ファイル生成は配信側。
func (u *IdeaUsecase) Export(ctx context.Context, format string) (ExportOutput, error) {
	if format != "csv" && format != "pdf" {
		return ExportOutput{}, NewHTTPError(http.StatusBadRequest, "invalid format")
	}

	return ExportOutput{
		DownloadURL: fmt.Sprintf("%s/downloads/ideas-export-%d.%s", u.cfg.APIDomain, time.Now().Unix(), format),
	}, nil
}
