package unit

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, id string, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

// =====================
// Mock: ChannelRepository
// =====================

type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) List(ctx context.Context) ([]model.Channel, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]model.Channel)
	return cs, args.Error(1)
}

func (m *MockChannelRepository) FindByID(ctx context.Context, id string) (model.Channel, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Channel)
	return c, args.Error(1)
}

func (m *MockChannelRepository) FindByURL(ctx context.Context, url string) (model.Channel, error) {
	args := m.Called(ctx, url)
	c, _ := args.Get(0).(model.Channel)
	return c, args.Error(1)
}

func (m *MockChannelRepository) Create(ctx context.Context, c model.Channel) (model.Channel, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Channel)
	return created, args.Error(1)
}

func (m *MockChannelRepository) Update(ctx context.Context, c model.Channel) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockChannelRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChannelRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: VideoRepository
// =====================

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) List(ctx context.Context, q repo.VideoListQuery) ([]model.Video, int64, error) {
	args := m.Called(ctx, q)
	vs, _ := args.Get(0).([]model.Video)
	return vs, args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id string) (model.Video, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(model.Video)
	return v, args.Error(1)
}

func (m *MockVideoRepository) Create(ctx context.Context, v model.Video) (model.Video, error) {
	args := m.Called(ctx, v)
	created, _ := args.Get(0).(model.Video)
	return created, args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, v model.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVideoRepository) DeleteByChannelID(ctx context.Context, channelID string) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}

func (m *MockVideoRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) StatsByChannel(ctx context.Context, channelID string) (repo.ChannelVideoStats, error) {
	args := m.Called(ctx, channelID)
	s, _ := args.Get(0).(repo.ChannelVideoStats)
	return s, args.Error(1)
}

func (m *MockVideoRepository) PerformanceByChannel(ctx context.Context, channelID string, days int) ([]repo.PerformancePoint, error) {
	args := m.Called(ctx, channelID, days)
	ps, _ := args.Get(0).([]repo.PerformancePoint)
	return ps, args.Error(1)
}

// =====================
// Mock: TranscriptRepository
// =====================

type MockTranscriptRepository struct {
	mock.Mock
}

func (m *MockTranscriptRepository) List(ctx context.Context, q repo.TranscriptListQuery) ([]model.Transcript, int64, error) {
	args := m.Called(ctx, q)
	ts, _ := args.Get(0).([]model.Transcript)
	return ts, args.Get(1).(int64), args.Error(2)
}

func (m *MockTranscriptRepository) FindByID(ctx context.Context, id string) (model.Transcript, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(model.Transcript)
	return t, args.Error(1)
}

func (m *MockTranscriptRepository) FindByVideoID(ctx context.Context, videoID string) (model.Transcript, error) {
	args := m.Called(ctx, videoID)
	t, _ := args.Get(0).(model.Transcript)
	return t, args.Error(1)
}

func (m *MockTranscriptRepository) Create(ctx context.Context, t model.Transcript) (model.Transcript, error) {
	args := m.Called(ctx, t)
	created, _ := args.Get(0).(model.Transcript)
	return created, args.Error(1)
}

func (m *MockTranscriptRepository) Update(ctx context.Context, t model.Transcript) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTranscriptRepository) DeleteByChannelID(ctx context.Context, channelID string) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}

func (m *MockTranscriptRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: IdeaRepository
// =====================

type MockIdeaRepository struct {
	mock.Mock
}

func (m *MockIdeaRepository) List(ctx context.Context, q repo.IdeaListQuery) ([]model.Idea, int64, error) {
	args := m.Called(ctx, q)
	is, _ := args.Get(0).([]model.Idea)
	return is, args.Get(1).(int64), args.Error(2)
}

func (m *MockIdeaRepository) FindByID(ctx context.Context, id string) (model.Idea, error) {
	args := m.Called(ctx, id)
	i, _ := args.Get(0).(model.Idea)
	return i, args.Error(1)
}

func (m *MockIdeaRepository) Create(ctx context.Context, i model.Idea) (model.Idea, error) {
	args := m.Called(ctx, i)
	created, _ := args.Get(0).(model.Idea)
	return created, args.Error(1)
}

func (m *MockIdeaRepository) UpdateRating(ctx context.Context, id string, rating int) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockIdeaRepository) UpdateFavorite(ctx context.Context, id string, favorite bool) error {
	args := m.Called(ctx, id, favorite)
	return args.Error(0)
}

func (m *MockIdeaRepository) DeleteByChannelID(ctx context.Context, channelID string) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}

func (m *MockIdeaRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdeaRepository) CountByChannelID(ctx context.Context, channelID string) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdeaRepository) CountByCategory(ctx context.Context) ([]repo.CategoryCount, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]repo.CategoryCount)
	return cs, args.Error(1)
}

func (m *MockIdeaRepository) TopTagsByChannel(ctx context.Context, channelID string, limit int) ([]repo.TagCount, error) {
	args := m.Called(ctx, channelID, limit)
	ts, _ := args.Get(0).([]repo.TagCount)
	return ts, args.Error(1)
}

func (m *MockIdeaRepository) CountPerDay(ctx context.Context, since time.Time) ([]repo.DateCount, error) {
	args := m.Called(ctx, since)
	ds, _ := args.Get(0).([]repo.DateCount)
	return ds, args.Error(1)
}

func (m *MockIdeaRepository) CountByChannel(ctx context.Context, limit int) ([]repo.ChannelIdeaCount, error) {
	args := m.Called(ctx, limit)
	cs, _ := args.Get(0).([]repo.ChannelIdeaCount)
	return cs, args.Error(1)
}

// =====================
// Mock: ActivityRepository
// =====================

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, a model.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActivityRepository) ListRecent(ctx context.Context, limit int) ([]model.Activity, error) {
	args := m.Called(ctx, limit)
	as, _ := args.Get(0).([]model.Activity)
	return as, args.Error(1)
}

// =====================
// Mock: SettingsRepository
// =====================

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindByUserID(ctx context.Context, userID string) (model.Settings, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(model.Settings)
	return s, args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s model.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	videos      repo.VideoRepository
	transcripts repo.TranscriptRepository
	ideas       repo.IdeaRepository
	activities  repo.ActivityRepository
}

func (r *TxReposMock) Videos() repo.VideoRepository           { return r.videos }
func (r *TxReposMock) Transcripts() repo.TranscriptRepository { return r.transcripts }
func (r *TxReposMock) Ideas() repo.IdeaRepository             { return r.ideas }
func (r *TxReposMock) Activities() repo.ActivityRepository    { return r.activities }

// =====================
// Helper
// =====================

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return string(b)
}
