package accounts

import (
	"time"

	"github.com/google/uuid"
)

// User is the login identity attached to an account. Password is nil for
// accounts created through Google sign-in.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"not null;uniqueIndex:idx_users_email"`
	Nick      string    `gorm:"not null;uniqueIndex:idx_users_nick"`
	Password  *string
	GoogleSub *string   `gorm:"uniqueIndex:idx_users_google_sub"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Account   Account   `gorm:"foreignKey:AccountID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
