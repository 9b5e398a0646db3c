package posts

import (
	"time"

	"github.com/google/uuid"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
)

type Post struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title           string    `gorm:"not null"`
	Body            string    `gorm:"not null"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	AddToFeed       bool      `gorm:"not null;default:true"`
	DisableComments bool      `gorm:"not null;default:false"`
	PublicLvl       int       `gorm:"column:public_lvl;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Post) GateVisibility() access.Visibility { return access.Visibility(p.PublicLvl) }
func (p Post) InFeed() bool                      { return p.AddToFeed }

// PostImage links a post to an uploaded image record.
type PostImage struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID  uuid.UUID `gorm:"type:uuid;not null;index:idx_post_images_post"`
	ImageID uuid.UUID `gorm:"type:uuid;not null;index"`
}
