package accounts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReferralExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, Referral{}.Expired(now), "nil expiry never expires")
	assert.False(t, Referral{ExpiresAt: &future}.Expired(now))
	assert.True(t, Referral{ExpiresAt: &past}.Expired(now))
	assert.False(t, Referral{ExpiresAt: &now}.Expired(now), "edge is still live at the exact expiry instant")
}
