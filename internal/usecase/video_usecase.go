package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type VideoUsecase struct {
	videos      repo.VideoRepository
	transcripts repo.TranscriptRepository
	channels    repo.ChannelRepository
	tx          repo.TransactionManager
}

// DI
func NewVideoUsecase(
	videos repo.VideoRepository,
	transcripts repo.TranscriptRepository,
	channels repo.ChannelRepository,
	tx repo.TransactionManager,
) *VideoUsecase {
	return &VideoUsecase{
		videos:      videos,
		transcripts: transcripts,
		channels:    channels,
		tx:          tx,
	}
}

// GET /api/videos の入力DTO
type ListVideosInput struct {
	Page             int
	Limit            int
	ChannelID        string
	TranscriptStatus string
	IdeasStatus      string
	Search           string
}

type VideoListOutput struct {
	Videos     []model.Video `json:"videos"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

func (u *VideoUsecase) List(ctx context.Context, in ListVideosInput) (VideoListOutput, error) {
	if in.Page < 1 {
		return VideoListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return VideoListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Search) > 100 {
		return VideoListOutput{}, NewHTTPError(http.StatusBadRequest, "search too long")
	}
	if !validJobStatusFilter(in.TranscriptStatus) {
		return VideoListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid transcriptStatus")
	}
	if !validJobStatusFilter(in.IdeasStatus) {
		return VideoListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid ideasStatus")
	}

	videos, total, err := u.videos.List(ctx, repo.VideoListQuery{
		Page:             in.Page,
		Limit:            in.Limit,
		ChannelID:        in.ChannelID,
		TranscriptStatus: in.TranscriptStatus,
		IdeasStatus:      in.IdeasStatus,
		Search:           strings.TrimSpace(in.Search),
	})
	if err != nil {
		return VideoListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totalPages := int((total + int64(in.Limit) - 1) / int64(in.Limit))

	return VideoListOutput{
		Videos:     videos,
		Total:      total,
		Page:       in.Page,
		TotalPages: totalPages,
	}, nil
}

// POST /api/videos の入力DTO（同期worker向け）。
type CreateVideoInput struct {
	ChannelID   string `json:"channelId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
	UploadDate  string `json:"uploadDate"`
	URL         string `json:"url"`
}

// Createは同期workerが取り込んだ動画を登録する。
func (u *VideoUsecase) Create(ctx context.Context, in CreateVideoInput) (model.Video, error) {
	if strings.TrimSpace(in.Title) == "" {
		return model.Video{}, NewHTTPError(http.StatusBadRequest, "title required")
	}
	if in.Views < 0 || in.Likes < 0 {
		return model.Video{}, NewHTTPError(http.StatusBadRequest, "views and likes must be >= 0")
	}
	if in.URL != "" {
		if _, err := url.ParseRequestURI(in.URL); err != nil {
			return model.Video{}, NewHTTPError(http.StatusBadRequest, "invalid url")
		}
	}

	channel, err := u.channels.FindByID(ctx, in.ChannelID)
	if err != nil {
		if err == repo.ErrNotFound {
			return model.Video{}, NewHTTPError(http.StatusNotFound, "channel not found")
		}
		return model.Video{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	uploadDate := time.Now()
	if in.UploadDate != "" {
		parsed, err := time.Parse(time.RFC3339, in.UploadDate)
		if err != nil {
			return model.Video{}, NewHTTPError(http.StatusBadRequest, "invalid uploadDate")
		}
		uploadDate = parsed
	}

	video, err := u.videos.Create(ctx, model.Video{
		ID:               uuid.NewString(),
		ChannelID:        channel.ID,
		ChannelName:      channel.Name,
		Title:            strings.TrimSpace(in.Title),
		Description:      in.Description,
		Thumbnail:        in.Thumbnail,
		Duration:         in.Duration,
		Views:            in.Views,
		Likes:            in.Likes,
		UploadDate:       uploadDate,
		URL:              in.URL,
		TranscriptStatus: model.JobStatusPending,
		IdeasStatus:      model.JobStatusPending,
	})
	if err != nil {
		return model.Video{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return video, nil
}

// GenerateTranscriptは文字起こしジョブを開始扱いにする。
// 動画をprocessingにして、空のtranscript行を先に作っておく。
// 本文はPUT /api/transcripts/:id で入る（pipelineは外部）。
func (u *VideoUsecase) GenerateTranscript(ctx context.Context, videoID string) (SuccessOutput, error) {
	if videoID == "" {
		return SuccessOutput{}, NewHTTPError(http.StatusBadRequest, "invalid video id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return startTranscript(ctx, r, videoID)
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return SuccessOutput{}, he
		}
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SuccessOutput{
		Success: true,
		Message: "Transcript generation started",
	}, nil
}

// GenerateIdeasはアイデア生成ジョブを開始扱いにする。
// 文字起こしが完了していない動画は弾く。
func (u *VideoUsecase) GenerateIdeas(ctx context.Context, videoID string) (SuccessOutput, error) {
	if videoID == "" {
		return SuccessOutput{}, NewHTTPError(http.StatusBadRequest, "invalid video id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return startIdeas(ctx, r, videoID)
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return SuccessOutput{}, he
		}
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SuccessOutput{
		Success: true,
		Message: "Ideas generation started",
	}, nil
}

// BulkGenerateTranscriptsは複数動画をまとめて開始する。
// 1件でも失敗したら全体をロールバック。
func (u *VideoUsecase) BulkGenerateTranscripts(ctx context.Context, videoIDs []string) (SuccessOutput, error) {
	if len(videoIDs) == 0 {
		return SuccessOutput{}, NewHTTPError(http.StatusBadRequest, "videoIds required")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		for _, id := range videoIDs {
			if err := startTranscript(ctx, r, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return SuccessOutput{}, he
		}
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SuccessOutput{
		Success: true,
		Message: fmt.Sprintf("Transcript generation started for %d videos", len(videoIDs)),
	}, nil
}

func (u *VideoUsecase) BulkGenerateIdeas(ctx context.Context, videoIDs []string) (SuccessOutput, error) {
	if len(videoIDs) == 0 {
		return SuccessOutput{}, NewHTTPError(http.StatusBadRequest, "videoIds required")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		for _, id := range videoIDs {
			if err := startIdeas(ctx, r, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return SuccessOutput{}, he
		}
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SuccessOutput{
		Success: true,
		Message: fmt.Sprintf("Ideas generation started for %d videos", len(videoIDs)),
	}, nil
}

// 1動画分の文字起こし開始処理。tx内で使う。
func startTranscript(ctx context.Context, r repo.TxRepos, videoID string) error {
	video, err := r.Videos().FindByID(ctx, videoID)
	if err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "video not found")
		}
		return err
	}

	if video.TranscriptStatus == model.JobStatusProcessing {
		return NewHTTPError(http.StatusConflict, "transcript generation already in progress")
	}

	//transcript行が無ければ先に作る
	transcript, err := r.Transcripts().FindByVideoID(ctx, videoID)
	if err == repo.ErrNotFound {
		transcript, err = r.Transcripts().Create(ctx, model.Transcript{
			ID:          uuid.NewString(),
			VideoID:     video.ID,
			VideoTitle:  video.Title,
			ChannelID:   video.ChannelID,
			ChannelName: video.ChannelName,
			Segments:    []model.TranscriptSegment{},
			Status:      model.JobStatusProcessing,
		})
		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else {
		transcript.Status = model.JobStatusProcessing
		if err := r.Transcripts().Update(ctx, transcript); err != nil {
			return err
		}
	}

	video.TranscriptStatus = model.JobStatusProcessing
	video.TranscriptID = transcript.ID
	return r.Videos().Update(ctx, video)
}

// 1動画分のアイデア生成開始処理。tx内で使う。
func startIdeas(ctx context.Context, r repo.TxRepos, videoID string) error {
	video, err := r.Videos().FindByID(ctx, videoID)
	if err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "video not found")
		}
		return err
	}

	if video.TranscriptStatus != model.JobStatusCompleted {
		return NewHTTPError(http.StatusConflict, "transcript not completed")
	}
	if video.IdeasStatus == model.JobStatusProcessing {
		return NewHTTPError(http.StatusConflict, "ideas generation already in progress")
	}

	video.IdeasStatus = model.JobStatusProcessing
	return r.Videos().Update(ctx, video)
}

// フィルタとして受け付けるstatus値か。空は「指定なし」。
func validJobStatusFilter(s string) bool {
	switch model.JobStatus(s) {
	case "", model.JobStatusPending, model.JobStatusProcessing,
		model.JobStatusCompleted, model.JobStatusFailed:
		return true
	}
	return false
}
