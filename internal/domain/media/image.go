package media

import (
	"time"

	"github.com/google/uuid"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
)

// Image is the metadata record of an uploaded picture; byte storage stays in
// the external image service, this row only carries the paths it hands back.
type Image struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	OriginalPath string    `gorm:"not null" json:"original_path"`
	WebpPath     *string   `json:"webp_path,omitempty"`
	PublicLvl    int       `gorm:"column:public_lvl;not null;default:0" json:"public_lvl"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i Image) GateVisibility() access.Visibility { return access.Visibility(i.PublicLvl) }
func (i Image) InFeed() bool                      { return true }
