package accounts

import (
	"time"

	"github.com/google/uuid"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
)

// Account kinds. Kind is a role axis orthogonal to resolved access: a
// commenter account can still own posts-free resources like comments.
const (
	KindCreator   = "creator"
	KindCommenter = "commenter"
	KindGuest     = "guest"
)

type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"not null;uniqueIndex:idx_accounts_email"`
	Kind      string    `gorm:"type:varchar(20);not null;default:'commenter'"`
	IsAdmin   bool      `gorm:"not null;default:false"`
	IsBanned  bool      `gorm:"not null;default:false"`
	PublicLvl int       `gorm:"column:public_lvl;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot converts the stored row into the read-only view the resolver
// consumes.
func (a Account) Snapshot() access.Account {
	return access.Account{
		ID:         a.ID,
		Kind:       a.Kind,
		IsAdmin:    a.IsAdmin,
		IsBanned:   a.IsBanned,
		Visibility: access.Visibility(a.PublicLvl),
	}
}
