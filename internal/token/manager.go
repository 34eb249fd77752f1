package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// 期限切れ。refresh側では「invalid」と区別して返す。
	ErrExpired = errors.New("token expired")
	// 署名不正・形式不正など期限切れ以外の全て。
	ErrInvalid = errors.New("token invalid")
)

// tokenに入れるユーザー情報。
type Claims struct {
	UserID string
	Email  string
}

// Managerはaccess/refresh両方のJWTを発行・検証する。
// 署名シークレットと有効期限はそれぞれ別。
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// access token発行（短命・stateless）
func (m *Manager) IssueAccess(userID, email string, now time.Time) (string, error) {
	return m.issue(userID, email, now, m.accessTTL, m.accessSecret)
}

// refresh token発行（長命・DB側にも保存される）
func (m *Manager) IssueRefresh(userID, email string, now time.Time) (string, error) {
	return m.issue(userID, email, now, m.refreshTTL, m.refreshSecret)
}

func (m *Manager) issue(userID, email string, now time.Time, ttl time.Duration, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(secret)
}

func (m *Manager) ParseAccess(raw string) (Claims, error) {
	return m.parse(raw, m.accessSecret)
}

func (m *Manager) ParseRefresh(raw string) (Claims, error) {
	return m.parse(raw, m.refreshSecret)
}

// 署名と期限を検証してclaimsを取り出す。
// DBは見ない。
func (m *Manager) parse(raw string, secret []byte) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrInvalid
	}

	mapClaims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalid
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return Claims{}, ErrInvalid
	}

	// emailは無くても致命ではない
	email, _ := mapClaims["email"].(string)

	return Claims{UserID: sub, Email: email}, nil
}
