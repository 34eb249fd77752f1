package unit

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newChannelUC(
	channels *MockChannelRepository,
	videos *MockVideoRepository,
	transcripts *MockTranscriptRepository,
	ideas *MockIdeaRepository,
	activities *MockActivityRepository,
) *usecase.ChannelUsecase {
	return usecase.NewChannelUsecase(channels, videos, transcripts, ideas, activities)
}

func TestChannelUsecase_Add_Success(t *testing.T) {
	ctx := context.Background()

	channels := new(MockChannelRepository)
	activities := new(MockActivityRepository)

	url := "https://youtube.com/@TechExplained"

	channels.On("FindByURL", mock.Anything, url).Return(model.Channel{}, repo.ErrNotFound)

	channels.On("Create", mock.Anything, mock.MatchedBy(func(c model.Channel) bool {
		// handleはURL末尾から、statusはsyncingで始まる
		return c.ID != "" && c.Handle == "@TechExplained" &&
			c.Name == "TechExplained" && c.Status == model.ChannelStatusSyncing
	})).Return(model.Channel{
		ID:     "c1",
		Name:   "TechExplained",
		Handle: "@TechExplained",
		URL:    url,
		Status: model.ChannelStatusSyncing,
	}, nil)

	activities.On("Create", mock.Anything, mock.MatchedBy(func(a model.Activity) bool {
		return a.Type == model.ActivityChannelAdded && a.ResourceID == "c1"
	})).Return(nil)

	u := newChannelUC(channels, new(MockVideoRepository), new(MockTranscriptRepository), new(MockIdeaRepository), activities)

	out, err := u.Add(ctx, url)
	assert.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Channel added successfully", out.Message)
	assert.Equal(t, "TechExplained", out.Channel.Name)

	channels.AssertExpectations(t)
	activities.AssertExpectations(t)
}

func TestChannelUsecase_Add_InvalidURL(t *testing.T) {
	u := newChannelUC(new(MockChannelRepository), new(MockVideoRepository), new(MockTranscriptRepository), new(MockIdeaRepository), new(MockActivityRepository))

	_, err := u.Add(context.Background(), "https://vimeo.com/@someone")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

// 同じURLの二重登録 => 409
func TestChannelUsecase_Add_Duplicate(t *testing.T) {
	ctx := context.Background()

	channels := new(MockChannelRepository)
	url := "https://youtube.com/@TechExplained"

	channels.On("FindByURL", mock.Anything, url).Return(model.Channel{ID: "c1", URL: url}, nil)

	u := newChannelUC(channels, new(MockVideoRepository), new(MockTranscriptRepository), new(MockIdeaRepository), new(MockActivityRepository))

	_, err := u.Add(ctx, url)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 409, he.Status)

	channels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 削除は配下のideas/transcripts/videosも消してからチャンネル本体を消す
func TestChannelUsecase_Delete_Cascades(t *testing.T) {
	ctx := context.Background()

	channels := new(MockChannelRepository)
	videos := new(MockVideoRepository)
	transcripts := new(MockTranscriptRepository)
	ideas := new(MockIdeaRepository)

	channels.On("FindByID", mock.Anything, "c1").Return(model.Channel{ID: "c1"}, nil)
	ideas.On("DeleteByChannelID", mock.Anything, "c1").Return(nil)
	transcripts.On("DeleteByChannelID", mock.Anything, "c1").Return(nil)
	videos.On("DeleteByChannelID", mock.Anything, "c1").Return(nil)
	channels.On("Delete", mock.Anything, "c1").Return(nil)

	u := newChannelUC(channels, videos, transcripts, ideas, new(MockActivityRepository))

	out, err := u.Delete(ctx, "c1")
	assert.NoError(t, err)
	assert.True(t, out.Success)

	channels.AssertExpectations(t)
	videos.AssertExpectations(t)
	transcripts.AssertExpectations(t)
	ideas.AssertExpectations(t)
}

func TestChannelUsecase_Delete_NotFound(t *testing.T) {
	channels := new(MockChannelRepository)
	channels.On("FindByID", mock.Anything, "ghost").Return(model.Channel{}, repo.ErrNotFound)

	u := newChannelUC(channels, new(MockVideoRepository), new(MockTranscriptRepository), new(MockIdeaRepository), new(MockActivityRepository))

	_, err := u.Delete(context.Background(), "ghost")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

// syncで集計値が数え直されてactiveに戻ること
func TestChannelUsecase_Sync_RecountsAndActivates(t *testing.T) {
	ctx := context.Background()

	channels := new(MockChannelRepository)
	videos := new(MockVideoRepository)
	activities := new(MockActivityRepository)

	channels.On("FindByID", mock.Anything, "c1").Return(model.Channel{
		ID:     "c1",
		Name:   "TechExplained",
		Status: model.ChannelStatusSyncing,
	}, nil)

	videos.On("StatsByChannel", mock.Anything, "c1").Return(repo.ChannelVideoStats{
		TotalVideos:      42,
		TranscribedCount: 17,
	}, nil)

	channels.On("Update", mock.Anything, mock.MatchedBy(func(c model.Channel) bool {
		return c.TotalVideos == 42 && c.VideosAnalyzed == 17 && c.Status == model.ChannelStatusActive
	})).Return(nil)

	activities.On("Create", mock.Anything, mock.MatchedBy(func(a model.Activity) bool {
		return a.Type == model.ActivitySyncCompleted
	})).Return(nil)

	u := newChannelUC(channels, videos, new(MockTranscriptRepository), new(MockIdeaRepository), activities)

	out, err := u.Sync(ctx, "c1")
	assert.NoError(t, err)
	assert.True(t, out.Success)

	channels.AssertExpectations(t)
	videos.AssertExpectations(t)
}
