package albums

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
	"github.com/mishaszu/imagery-storage/internal/domain/accounts"
)

func GetWithOwner(ctx context.Context, db *gorm.DB, albumID uuid.UUID) (Album, accounts.Account, error) {
	var album Album
	if err := db.WithContext(ctx).Where("id = ?", albumID).First(&album).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Album{}, accounts.Account{}, fmt.Errorf("album %s: %w", albumID, access.ErrNotFound)
		}
		return Album{}, accounts.Account{}, err
	}

	var owner accounts.Account
	err := db.WithContext(ctx).
		Joins("JOIN users ON users.account_id = accounts.id").
		Where("users.id = ?", album.UserID).
		First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Album{}, accounts.Account{}, fmt.Errorf("owner of album %s: %w", albumID, access.ErrNotFound)
		}
		return Album{}, accounts.Account{}, err
	}
	return album, owner, nil
}

func ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]Album, error) {
	var out []Album
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// VisibilitiesForPost returns the visibility of every album containing the
// post. A non-feed post is only reachable through one of these.
func VisibilitiesForPost(ctx context.Context, db *gorm.DB, postID uuid.UUID) ([]access.Visibility, error) {
	var lvls []int
	err := db.WithContext(ctx).
		Model(&Album{}).
		Joins("JOIN album_posts ON album_posts.album_id = albums.id").
		Where("album_posts.post_id = ?", postID).
		Pluck("albums.public_lvl", &lvls).Error
	if err != nil {
		return nil, err
	}
	out := make([]access.Visibility, 0, len(lvls))
	for _, l := range lvls {
		out = append(out, access.Visibility(l))
	}
	return out, nil
}
