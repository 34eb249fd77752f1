package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestManager() *Manager {
	return NewManager("access-secret", "refresh-secret", 15*time.Minute, 30*24*time.Hour)
}

func TestManager_IssueAndParseAccess(t *testing.T) {
	m := newTestManager()

	raw, err := m.IssueAccess("u1", "user@test.com", time.Now())
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)

	claims, err := m.ParseAccess(raw)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
}

// accessとrefreshは署名が別なので相互に使えない
func TestManager_SecretsAreSeparate(t *testing.T) {
	m := newTestManager()

	access, err := m.IssueAccess("u1", "user@test.com", time.Now())
	assert.NoError(t, err)
	refresh, err := m.IssueRefresh("u1", "user@test.com", time.Now())
	assert.NoError(t, err)

	_, err = m.ParseRefresh(access)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = m.ParseAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestManager_ExpiredToken(t *testing.T) {
	expired := NewManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	raw, err := expired.IssueRefresh("u1", "user@test.com", time.Now())
	assert.NoError(t, err)

	m := newTestManager()
	_, err = m.ParseRefresh(raw)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestManager_GarbageToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseAccess("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestManager_TamperedToken(t *testing.T) {
	m := newTestManager()

	raw, err := m.IssueAccess("u1", "user@test.com", time.Now())
	assert.NoError(t, err)

	tampered := raw[:len(raw)-2] + "xx"
	_, err = m.ParseAccess(tampered)
	assert.ErrorIs(t, err, ErrInvalid)
}
