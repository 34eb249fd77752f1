package e2e

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type channelDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
	URL    string `json:"url"`
	Status string `json:"status"`
}

type addChannelResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Channel channelDTO `json:"channel"`
}

// チャンネル追加 -> 一覧 -> 重複409 -> 削除 の一連の流れ
func TestChannels_AddListDelete(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	login := c.registerAndLogin(ctx, t, uniqueEmail("dave"), "secret123", "Dave")
	bearer := login.AccessToken

	url := fmt.Sprintf("https://youtube.com/@e2e%d", time.Now().UnixNano())

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/channels", bearer, map[string]string{"url": url})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add channel failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var added addChannelResponse
	decodeJSON(t, body, &added)
	if !added.Success || added.Channel.ID == "" || added.Channel.Status != "syncing" {
		t.Fatalf("unexpected add response: %s", string(body))
	}

	// 同じURLは409
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/api/channels", bearer, map[string]string{"url": url})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate channel should be 409: status=%d body=%s", resp.StatusCode, string(body))
	}

	// 一覧に含まれる
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/api/channels", bearer, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list channels failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var list struct {
		Channels []channelDTO `json:"channels"`
	}
	decodeJSON(t, body, &list)

	found := false
	for _, ch := range list.Channels {
		if ch.ID == added.Channel.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("added channel not in list: %s", string(body))
	}

	// 削除
	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/api/channels/"+added.Channel.ID, bearer, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete channel failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	// 二重削除は404
	resp, _ = c.doJSON(ctx, t, http.MethodDelete, "/api/channels/"+added.Channel.ID, bearer, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete should be 404: status=%d", resp.StatusCode)
	}
}

func TestDashboard_StatsShape(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	login := c.registerAndLogin(ctx, t, uniqueEmail("erin"), "secret123", "Erin")

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/api/analytics/dashboard", login.AccessToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard stats failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var out struct {
		Stats *struct {
			TotalChannels    *int64 `json:"totalChannels"`
			TotalVideos      *int64 `json:"totalVideos"`
			TotalTranscripts *int64 `json:"totalTranscripts"`
			TotalIdeas       *int64 `json:"totalIdeas"`
		} `json:"stats"`
	}
	decodeJSON(t, body, &out)
	if out.Stats == nil {
		t.Fatalf("dashboard response missing stats: %s", string(body))
	}
	if out.Stats.TotalChannels == nil || out.Stats.TotalVideos == nil ||
		out.Stats.TotalTranscripts == nil || out.Stats.TotalIdeas == nil {
		t.Fatalf("dashboard stats missing fields: %s", string(body))
	}
}

// 設定はユーザーごと。初回はデフォルトが返り、更新後は保存値が返る
func TestSettings_GetAndUpdate(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	login := c.registerAndLogin(ctx, t, uniqueEmail("frank"), "secret123", "Frank")
	bearer := login.AccessToken

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/api/settings", bearer, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get settings failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var settings struct {
		SyncIntervalHours int `json:"syncIntervalHours"`
		IdeasPerVideo     int `json:"ideasPerVideo"`
	}
	decodeJSON(t, body, &settings)
	if settings.SyncIntervalHours != 24 || settings.IdeasPerVideo != 8 {
		t.Fatalf("unexpected defaults: %s", string(body))
	}

	resp, body = c.doJSON(ctx, t, http.MethodPut, "/api/settings", bearer, map[string]interface{}{
		"syncIntervalHours": 6,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update settings failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	resp, body = c.doJSON(ctx, t, http.MethodGet, "/api/settings", bearer, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get settings failed: status=%d body=%s", resp.StatusCode, string(body))
	}
	decodeJSON(t, body, &settings)
	if settings.SyncIntervalHours != 6 {
		t.Fatalf("settings update not persisted: %s", string(body))
	}

	// 範囲外は400
	resp, _ = c.doJSON(ctx, t, http.MethodPut, "/api/settings", bearer, map[string]interface{}{
		"ideasPerVideo": 999,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("out-of-range update should be 400: status=%d", resp.StatusCode)
	}
}
