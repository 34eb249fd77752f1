package usecase

import (
	"context"
	"math"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AnalyticsUsecase struct {
	channels    repo.ChannelRepository
	videos      repo.VideoRepository
	transcripts repo.TranscriptRepository
	ideas       repo.IdeaRepository
	activities  repo.ActivityRepository
}

// DI
func NewAnalyticsUsecase(
	channels repo.ChannelRepository,
	videos repo.VideoRepository,
	transcripts repo.TranscriptRepository,
	ideas repo.IdeaRepository,
	activities repo.ActivityRepository,
) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		channels:    channels,
		videos:      videos,
		transcripts: transcripts,
		ideas:       ideas,
		activities:  activities,
	}
}

type DashboardStats struct {
	TotalChannels    int64            `json:"totalChannels"`
	TotalVideos      int64            `json:"totalVideos"`
	TotalTranscripts int64            `json:"totalTranscripts"`
	TotalIdeas       int64            `json:"totalIdeas"`
	RecentActivity   []model.Activity `json:"recentActivity"`
}

type DashboardOutput struct {
	Stats DashboardStats `json:"stats"`
}

// Dashboardは全体の件数と直近の操作履歴をまとめて返す。
func (u *AnalyticsUsecase) Dashboard(ctx context.Context) (DashboardOutput, error) {
	channels, err := u.channels.Count(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	videos, err := u.videos.Count(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	transcripts, err := u.transcripts.Count(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	ideas, err := u.ideas.Count(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	recent, err := u.activities.ListRecent(ctx, 10)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DashboardOutput{Stats: DashboardStats{
		TotalChannels:    channels,
		TotalVideos:      videos,
		TotalTranscripts: transcripts,
		TotalIdeas:       ideas,
		RecentActivity:   recent,
	}}, nil
}

type ChannelMetrics struct {
	AverageViews      float64 `json:"averageViews"`
	EngagementRate    float64 `json:"engagementRate"`
	UploadFrequency   float64 `json:"uploadFrequency"`
	TotalVideos       int64   `json:"totalVideos"`
	TranscribedVideos int64   `json:"transcribedVideos"`
	IdeasGenerated    int64   `json:"ideasGenerated"`
}

type PerformancePointDTO struct {
	Date       string  `json:"date"`
	Views      int64   `json:"views"`
	Engagement float64 `json:"engagement"`
}

type TopTopicDTO struct {
	Topic      string  `json:"topic"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ChannelAnalytics struct {
	ChannelID       string                `json:"channelId"`
	ChannelName     string                `json:"channelName"`
	Metrics         ChannelMetrics        `json:"metrics"`
	PerformanceData []PerformancePointDTO `json:"performanceData"`
	TopTopics       []TopTopicDTO         `json:"topTopics"`
}

type ChannelAnalyticsOutput struct {
	Analytics ChannelAnalytics `json:"analytics"`
}

// Channelは1チャンネル分の解析サマリを返す。
// engagementRateは平均likes/平均viewsの割合（%）。
// uploadFrequencyは週あたりの投稿本数。
func (u *AnalyticsUsecase) Channel(ctx context.Context, channelID string) (ChannelAnalyticsOutput, error) {
	if channelID == "" {
		return ChannelAnalyticsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid channel id")
	}

	channel, err := u.channels.FindByID(ctx, channelID)
	if err != nil {
		if err == repo.ErrNotFound {
			return ChannelAnalyticsOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return ChannelAnalyticsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	stats, err := u.videos.StatsByChannel(ctx, channelID)
	if err != nil {
		return ChannelAnalyticsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	engagementRate := 0.0
	if stats.AverageViews > 0 {
		engagementRate = round2(stats.AverageLikes / stats.AverageViews * 100)
	}

	uploadFrequency := 0.0
	if stats.TotalVideos > 1 && stats.LastUpload.After(stats.FirstUpload) {
		weeks := stats.LastUpload.Sub(stats.FirstUpload).Hours() / (24 * 7)
		if weeks > 0 {
			uploadFrequency = round2(float64(stats.TotalVideos) / weeks)
		}
	}

	ideasGenerated, err := u.ideas.CountByChannelID(ctx, channelID)
	if err != nil {
		return ChannelAnalyticsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	points, err := u.videos.PerformanceByChannel(ctx, channelID, 7)
	if err != nil {
		return ChannelAnalyticsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	performance := make([]PerformancePointDTO, 0, len(points))
	for _, p := range points {
		performance = append(performance, PerformancePointDTO{
			Date:       p.Date,
			Views:      p.Views,
			Engagement: round2(p.Engagement),
		})
	}

	tags, err := u.ideas.TopTagsByChannel(ctx, channelID, 5)
	if err != nil {
		return ChannelAnalyticsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	var tagTotal int64
	for _, t := range tags {
		tagTotal += t.Count
	}
	topTopics := make([]TopTopicDTO, 0, len(tags))
	for _, t := range tags {
		pct := 0.0
		if tagTotal > 0 {
			pct = round2(float64(t.Count) / float64(tagTotal) * 100)
		}
		topTopics = append(topTopics, TopTopicDTO{
			Topic:      t.Tag,
			Count:      t.Count,
			Percentage: pct,
		})
	}

	return ChannelAnalyticsOutput{Analytics: ChannelAnalytics{
		ChannelID:   channel.ID,
		ChannelName: channel.Name,
		Metrics: ChannelMetrics{
			AverageViews:      round2(stats.AverageViews),
			EngagementRate:    engagementRate,
			UploadFrequency:   uploadFrequency,
			TotalVideos:       stats.TotalVideos,
			TranscribedVideos: stats.TranscribedCount,
			IdeasGenerated:    ideasGenerated,
		},
		PerformanceData: performance,
		TopTopics:       topTopics,
	}}, nil
}

type CategoryBreakdownDTO struct {
	Category   string  `json:"category"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type TrendPointDTO struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ChannelIdeasDTO struct {
	ChannelName string  `json:"channelName"`
	Count       int64   `json:"count"`
	Percentage  float64 `json:"percentage"`
}

type IdeasAnalytics struct {
	TotalIdeas          int64                  `json:"totalIdeas"`
	CategoriesBreakdown []CategoryBreakdownDTO `json:"categoriesBreakdown"`
	TrendsOverTime      []TrendPointDTO        `json:"trendsOverTime"`
	TopChannels         []ChannelIdeasDTO      `json:"topChannels"`
}

type IdeasAnalyticsOutput struct {
	Analytics IdeasAnalytics `json:"analytics"`
}

// Ideasはアイデア全体の内訳（カテゴリ別・日別・チャンネル別）を返す。
func (u *AnalyticsUsecase) Ideas(ctx context.Context) (IdeasAnalyticsOutput, error) {
	total, err := u.ideas.Count(ctx)
	if err != nil {
		return IdeasAnalyticsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	categories, err := u.ideas.CountByCategory(ctx)
	if err != nil {
		return IdeasAnalyticsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	breakdown := make([]CategoryBreakdownDTO, 0, len(categories))
	for _, c := range categories {
		pct := 0.0
		if total > 0 {
			pct = round2(float64(c.Count) / float64(total) * 100)
		}
		breakdown = append(breakdown, CategoryBreakdownDTO{
			Category:   c.Category,
			Count:      c.Count,
			Percentage: pct,
		})
	}

	since := time.Now().AddDate(0, 0, -7)
	perDayRows, err := u.ideas.CountPerDay(ctx, since)
	if err != nil {
		return IdeasAnalyticsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	trends := make([]TrendPointDTO, 0, len(perDayRows))
	for _, d := range perDayRows {
		trends = append(trends, TrendPointDTO{Date: d.Date, Count: d.Count})
	}

	channelRows, err := u.ideas.CountByChannel(ctx, 5)
	if err != nil {
		return IdeasAnalyticsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	topChannels := make([]ChannelIdeasDTO, 0, len(channelRows))
	for _, c := range channelRows {
		pct := 0.0
		if total > 0 {
			pct = round2(float64(c.Count) / float64(total) * 100)
		}
		topChannels = append(topChannels, ChannelIdeasDTO{
			ChannelName: c.ChannelName,
			Count:       c.Count,
			Percentage:  pct,
		})
	}

	return IdeasAnalyticsOutput{Analytics: IdeasAnalytics{
		TotalIdeas:          total,
		CategoriesBreakdown: breakdown,
		TrendsOverTime:      trends,
		TopChannels:         topChannels,
	}}, nil
}

// 小数第2位で丸める。JSONに流す集計値用。
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
