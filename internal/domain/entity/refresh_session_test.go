package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshSession_IsValid(t *testing.T) {
	now := time.Now()

	live := &RefreshSession{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, live.IsValid())

	expired := &RefreshSession{ExpiresAt: now.Add(-time.Minute)}
	assert.False(t, expired.IsValid())

	revokedAt := now.Add(-time.Minute)
	revoked := &RefreshSession{ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt}
	assert.False(t, revoked.IsValid())
}
