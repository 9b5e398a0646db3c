package accounts

import (
	"time"

	"github.com/google/uuid"
)

// Referral is the directed subscription edge: the subscriber gains viewing
// rights over the referrer's content until the edge expires. A nil ExpiresAt
// never expires.
type Referral struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferrerID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_referrals_edge"`
	SubscriberID uuid.UUID  `gorm:"type:uuid;not null;index:idx_referrals_edge"`
	ExpiresAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Referral) Expired(now time.Time) bool {
	return r.ExpiresAt != nil && r.ExpiresAt.Before(now)
}
