package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type ChannelUsecase struct {
	channels    repo.ChannelRepository
	videos      repo.VideoRepository
	transcripts repo.TranscriptRepository
	ideas       repo.IdeaRepository
	activities  repo.ActivityRepository
}

// DI
func NewChannelUsecase(
	channels repo.ChannelRepository,
	videos repo.VideoRepository,
	transcripts repo.TranscriptRepository,
	ideas repo.IdeaRepository,
	activities repo.ActivityRepository,
) *ChannelUsecase {
	return &ChannelUsecase{
		channels:    channels,
		videos:      videos,
		transcripts: transcripts,
		ideas:       ideas,
		activities:  activities,
	}
}

type ChannelListOutput struct {
	Channels []model.Channel `json:"channels"`
}

func (u *ChannelUsecase) List(ctx context.Context) (ChannelListOutput, error) {
	channels, err := u.channels.List(ctx)
	if err != nil {
		return ChannelListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ChannelListOutput{Channels: channels}, nil
}

type AddChannelOutput struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Channel model.Channel `json:"channel"`
}

// AddはURLだけ受け取ってチャンネルを登録する。
// メタデータはYouTube側から取らない（同期workerの仕事）ので、
// handleをURLから推測して仮の名前を付けておく。
func (u *ChannelUsecase) Add(ctx context.Context, url string) (AddChannelOutput, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return AddChannelOutput{}, NewHTTPError(http.StatusBadRequest, "url required")
	}
	if !strings.Contains(url, "youtube.com/") {
		return AddChannelOutput{}, NewHTTPError(http.StatusBadRequest, "invalid channel url")
	}

	//同じURLの二重登録は弾く
	if _, err := u.channels.FindByURL(ctx, url); err == nil {
		return AddChannelOutput{}, NewHTTPError(http.StatusConflict, "channel already added")
	} else if err != repo.ErrNotFound {
		return AddChannelOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	handle := handleFromURL(url)
	name := nameFromHandle(handle)

	now := time.Now()
	channel, err := u.channels.Create(ctx, model.Channel{
		ID:       uuid.NewString(),
		Name:     name,
		Handle:   handle,
		URL:      url,
		LastSync: now,
		Status:   model.ChannelStatusSyncing,
	})
	if err != nil {
		return AddChannelOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//履歴（失敗しても本体は成功扱い）
	_ = u.activities.Create(ctx, model.Activity{
		ID:         uuid.NewString(),
		Type:       model.ActivityChannelAdded,
		Message:    fmt.Sprintf("Added new channel %q", channel.Name),
		ResourceID: channel.ID,
	})

	return AddChannelOutput{
		Success: true,
		Message: "Channel added successfully",
		Channel: channel,
	}, nil
}

type SuccessOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Deleteはチャンネルと配下の動画/文字起こし/アイデアを消す。
func (u *ChannelUsecase) Delete(ctx context.Context, channelID string) (SuccessOutput, error) {
	if channelID == "" {
		return SuccessOutput{}, NewHTTPError(http.StatusBadRequest, "invalid channel id")
	}

	if _, err := u.channels.FindByID(ctx, channelID); err != nil {
		if err == repo.ErrNotFound {
			return SuccessOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.ideas.DeleteByChannelID(ctx, channelID); err != nil {
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := u.transcripts.DeleteByChannelID(ctx, channelID); err != nil {
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := u.videos.DeleteByChannelID(ctx, channelID); err != nil {
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := u.channels.Delete(ctx, channelID); err != nil {
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SuccessOutput{
		Success: true,
		Message: "Channel deleted successfully",
	}, nil
}

// SyncはDB内の集計値（動画数・解析済み数）を数え直す。
// YouTube本体からの取り込みはここではやらない。
func (u *ChannelUsecase) Sync(ctx context.Context, channelID string) (SuccessOutput, error) {
	if channelID == "" {
		return SuccessOutput{}, NewHTTPError(http.StatusBadRequest, "invalid channel id")
	}

	channel, err := u.channels.FindByID(ctx, channelID)
	if err != nil {
		if err == repo.ErrNotFound {
			return SuccessOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	stats, err := u.videos.StatsByChannel(ctx, channelID)
	if err != nil {
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	channel.TotalVideos = stats.TotalVideos
	channel.VideosAnalyzed = stats.TranscribedCount
	channel.LastSync = time.Now()
	channel.Status = model.ChannelStatusActive

	if err := u.channels.Update(ctx, channel); err != nil {
		return SuccessOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	_ = u.activities.Create(ctx, model.Activity{
		ID:         uuid.NewString(),
		Type:       model.ActivitySyncCompleted,
		Message:    fmt.Sprintf("Sync completed for %q", channel.Name),
		ResourceID: channel.ID,
	})

	return SuccessOutput{
		Success: true,
		Message: "Channel sync started",
	}, nil
}

// URLの末尾から@handleを取り出す。
func handleFromURL(url string) string {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return ""
	}

	last := trimmed[idx+1:]
	if strings.HasPrefix(last, "@") {
		return last
	}
	return ""
}

// handleから仮の表示名を作る。
func nameFromHandle(handle string) string {
	if handle == "" {
		return "New Channel"
	}
	return strings.TrimPrefix(handle, "@")
}
