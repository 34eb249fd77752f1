package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type SettingsUsecase struct {
	settings repo.SettingsRepository
}

// DI
func NewSettingsUsecase(settings repo.SettingsRepository) *SettingsUsecase {
	return &SettingsUsecase{settings: settings}
}

// 未保存ユーザーに返すデフォルト値。
func defaultSettings(userID string) model.Settings {
	return model.Settings{
		UserID:             userID,
		AutoSync:           true,
		SyncIntervalHours:  24,
		TranscriptLanguage: "en",
		IdeasPerVideo:      8,
		EmailNotifications: false,
	}
}

func (u *SettingsUsecase) Get(ctx context.Context, userID string) (model.Settings, error) {
	s, err := u.settings.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		//一度も保存していなければデフォルトを返すだけ（行は作らない）
		return defaultSettings(userID), nil
	}
	if err != nil {
		return model.Settings{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

// PUT /api/settings の入力DTO。nilの項目は変更しない。
type UpdateSettingsInput struct {
	AutoSync           *bool   `json:"autoSync"`
	SyncIntervalHours  *int    `json:"syncIntervalHours"`
	TranscriptLanguage *string `json:"transcriptLanguage"`
	IdeasPerVideo      *int    `json:"ideasPerVideo"`
	EmailNotifications *bool   `json:"emailNotifications"`
}

type SettingsOutput struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Settings model.Settings `json:"settings"`
}

func (u *SettingsUsecase) Update(ctx context.Context, userID string, in UpdateSettingsInput) (SettingsOutput, error) {
	if in.SyncIntervalHours != nil && (*in.SyncIntervalHours < 1 || *in.SyncIntervalHours > 168) {
		return SettingsOutput{}, NewHTTPError(http.StatusBadRequest, "syncIntervalHours must be between 1 and 168")
	}
	if in.IdeasPerVideo != nil && (*in.IdeasPerVideo < 1 || *in.IdeasPerVideo > 50) {
		return SettingsOutput{}, NewHTTPError(http.StatusBadRequest, "ideasPerVideo must be between 1 and 50")
	}
	if in.TranscriptLanguage != nil && (*in.TranscriptLanguage == "" || len(*in.TranscriptLanguage) > 10) {
		return SettingsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid transcriptLanguage")
	}

	s, err := u.settings.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		s = defaultSettings(userID)
		s.ID = uuid.NewString()
	} else if err != nil {
		return SettingsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.AutoSync != nil {
		s.AutoSync = *in.AutoSync
	}
	if in.SyncIntervalHours != nil {
		s.SyncIntervalHours = *in.SyncIntervalHours
	}
	if in.TranscriptLanguage != nil {
		s.TranscriptLanguage = *in.TranscriptLanguage
	}
	if in.IdeasPerVideo != nil {
		s.IdeasPerVideo = *in.IdeasPerVideo
	}
	if in.EmailNotifications != nil {
		s.EmailNotifications = *in.EmailNotifications
	}

	if err := u.settings.Save(ctx, s); err != nil {
		return SettingsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SettingsOutput{
		Success:  true,
		Message:  "Settings updated successfully",
		Settings: s,
	}, nil
}
