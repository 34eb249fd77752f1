package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type TranscriptUsecase struct {
	cfg         config.Config
	transcripts repo.TranscriptRepository
	videos      repo.VideoRepository
	activities  repo.ActivityRepository
}

// DI
func NewTranscriptUsecase(
	cfg config.Config,
	transcripts repo.TranscriptRepository,
	videos repo.VideoRepository,
	activities repo.ActivityRepository,
) *TranscriptUsecase {
	return &TranscriptUsecase{
		cfg:         cfg,
		transcripts: transcripts,
		videos:      videos,
		activities:  activities,
	}
}

type ListTranscriptsInput struct {
	Page      int
	Limit     int
	ChannelID string
	Status    string
	Search    string
}

type TranscriptListOutput struct {
	Transcripts []model.Transcript `json:"transcripts"`
	Total       int64              `json:"total"`
	Page        int                `json:"page"`
	TotalPages  int                `json:"totalPages"`
}

func (u *TranscriptUsecase) List(ctx context.Context, in ListTranscriptsInput) (TranscriptListOutput, error) {
	if in.Page < 1 {
		return TranscriptListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return TranscriptListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if !validJobStatusFilter(in.Status) {
		return TranscriptListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	transcripts, total, err := u.transcripts.List(ctx, repo.TranscriptListQuery{
		Page:      in.Page,
		Limit:     in.Limit,
		ChannelID: in.ChannelID,
		Status:    in.Status,
		Search:    strings.TrimSpace(in.Search),
	})
	if err != nil {
		return TranscriptListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totalPages := int((total + int64(in.Limit) - 1) / int64(in.Limit))

	return TranscriptListOutput{
		Transcripts: transcripts,
		Total:       total,
		Page:        in.Page,
		TotalPages:  totalPages,
	}, nil
}

type TranscriptOutput struct {
	Transcript model.Transcript `json:"transcript"`
}

func (u *TranscriptUsecase) Get(ctx context.Context, transcriptID string) (TranscriptOutput, error) {
	if transcriptID == "" {
		return TranscriptOutput{}, NewHTTPError(http.StatusBadRequest, "invalid transcript id")
	}

	t, err := u.transcripts.FindByID(ctx, transcriptID)
	if err == repo.ErrNotFound {
		return TranscriptOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return TranscriptOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return TranscriptOutput{Transcript: t}, nil
}

// UpdateContentは本文を差し替えて完了扱いにする。
// 外部の文字起こしworkerも編集画面もここを通る。
func (u *TranscriptUsecase) UpdateContent(ctx context.Context, transcriptID string, content string) (SuccessOutput, error) {
	if transcriptID == "" {
		return SuccessOutput{}, NewHTTPError(http.StatusBadRequest, "invalid transcript id")
	}
	if strings.TrimSpace(content) == "" {
		return SuccessOutput{}, NewHTTPError(http.StatusBadRequest, "content required")
	}

	t, err := u.transcripts.FindByID(ctx, transcriptID)
	if err == repo.ErrNotFound {
		return SuccessOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	wasCompleted := t.Status == model.JobStatusCompleted

	t.Content = content
	t.Status = model.JobStatusCompleted
	if err := u.transcripts.Update(ctx, t); err != nil {
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//動画側のstatusも完了にする
	video, err := u.videos.FindByID(ctx, t.VideoID)
	if err == nil {
		video.TranscriptStatus = model.JobStatusCompleted
		video.TranscriptID = t.ID
		_ = u.videos.Update(ctx, video)
	}

	//初回完了のときだけ履歴を残す
	if !wasCompleted {
		_ = u.activities.Create(ctx, model.Activity{
			ID:         uuid.NewString(),
			Type:       model.ActivityTranscriptCompleted,
			Message:    fmt.Sprintf("Transcript completed for %q", t.VideoTitle),
			ResourceID: t.VideoID,
		})
	}

	return SuccessOutput{
		Success: true,
		Message: "Transcript updated successfully",
	}, nil
}

type ExportOutput struct {
	DownloadURL string `json:"downloadUrl"`
}

// Exportはダウンロード先URLを返すだけ。ファイル生成は配信側。
func (u *TranscriptUsecase) Export(ctx context.Context, transcriptID string, format string) (ExportOutput, error) {
	if format != "txt" && format != "pdf" {
		return ExportOutput{}, NewHTTPError(http.StatusBadRequest, "invalid format")
	}

	if _, err := u.transcripts.FindByID(ctx, transcriptID); err != nil {
		if err == repo.ErrNotFound {
			return ExportOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return ExportOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ExportOutput{
		DownloadURL: fmt.Sprintf("%s/downloads/transcript-%s.%s", u.cfg.APIDomain, transcriptID, format),
	}, nil
}
