package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"
)

// 登録 -> ログイン -> me -> refresh -> 旧token再利用拒否 の一連の流れ
func TestAuthFlow_RegisterLoginRefreshRotation(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	email := uniqueEmail("alice")
	login := c.registerAndLogin(ctx, t, email, "secret123", "Alice")

	if login.AccessToken == "" || login.RefreshToken == "" {
		t.Fatalf("login did not return tokens: %+v", login)
	}
	if login.User.Email != email {
		t.Fatalf("unexpected user in login response: %+v", login.User)
	}

	// me
	resp, body := c.doJSON(ctx, t, http.MethodGet, "/auth/me", login.AccessToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	// refresh
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refreshToken": login.RefreshToken,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("refresh failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var refreshed RefreshResponse
	decodeJSON(t, body, &refreshed)
	if !refreshed.Success || refreshed.Data.AccessToken == "" || refreshed.Data.RefreshToken == "" {
		t.Fatalf("unexpected refresh response: %s", string(body))
	}

	// ローテーション済みの旧refresh tokenは再利用できない
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refreshToken": login.RefreshToken,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("replayed refresh token should be rejected: status=%d body=%s", resp.StatusCode, string(body))
	}

	// 新しいrefresh tokenは使える
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refreshToken": refreshed.Data.RefreshToken,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rotated refresh token should work: status=%d body=%s", resp.StatusCode, string(body))
	}
}

func TestAuthFlow_LoginErrors(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 入力不足
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "someone@example.com",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing password should be 400: status=%d body=%s", resp.StatusCode, string(body))
	}

	var msg MessageResponse
	decodeJSON(t, body, &msg)
	if msg.Message != "Email and password are required" {
		t.Fatalf("unexpected message: %q", msg.Message)
	}

	// いないユーザーとパスワード違いが同じメッセージになること
	email := uniqueEmail("bob")
	c.registerAndLogin(ctx, t, email, "secret123", "Bob")

	_, bodyUnknown := c.doJSON(ctx, t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    uniqueEmail("ghost"),
		"password": "whatever1",
	})
	_, bodyWrongPW := c.doJSON(ctx, t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": "wrongpass1",
	})

	var m1, m2 MessageResponse
	decodeJSON(t, bodyUnknown, &m1)
	decodeJSON(t, bodyWrongPW, &m2)
	if m1.Message != m2.Message {
		t.Fatalf("unknown email and wrong password must be indistinguishable: %q vs %q", m1.Message, m2.Message)
	}
}

// logout後は保存済みrefresh tokenが失効している
func TestAuthFlow_LogoutRevokesRefreshToken(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	email := uniqueEmail("carol")
	login := c.registerAndLogin(ctx, t, email, "secret123", "Carol")

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/auth/logout", "", map[string]string{
		"email": email,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	resp, body = c.doJSON(ctx, t, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refreshToken": login.RefreshToken,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("refresh after logout should be rejected: status=%d body=%s", resp.StatusCode, string(body))
	}
}

func TestAuthFlow_ProtectedRoutesRequireToken(t *testing.T) {
	c := NewTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, _ := c.doJSON(ctx, t, http.MethodGet, "/api/channels", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing token should be 401: status=%d", resp.StatusCode)
	}

	resp, _ = c.doJSON(ctx, t, http.MethodGet, "/api/channels", "garbage-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token should be 401: status=%d", resp.StatusCode)
	}
}
