package albums

import (
	"time"

	"github.com/google/uuid"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
)

type Album struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"not null"`
	Description *string
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	PublicLvl   int       `gorm:"column:public_lvl;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Album) GateVisibility() access.Visibility { return access.Visibility(a.PublicLvl) }

// Albums always show up in their owner's profile listing, there is no feed
// flag on them.
func (a Album) InFeed() bool { return true }

// AlbumPost links a post into an album.
type AlbumPost struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AlbumID uuid.UUID `gorm:"type:uuid;not null;index:idx_album_posts_album"`
	PostID  uuid.UUID `gorm:"type:uuid;not null;index:idx_album_posts_post"`

	CreatedAt time.Time
}
