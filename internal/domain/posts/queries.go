package posts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
	"github.com/mishaszu/imagery-storage/internal/domain/accounts"
)

// GetWithOwner fetches a post together with its owning account in one round
// trip; the account is what the resolver gates against.
func GetWithOwner(ctx context.Context, db *gorm.DB, postID uuid.UUID) (Post, accounts.Account, error) {
	var post Post
	if err := db.WithContext(ctx).Where("id = ?", postID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Post{}, accounts.Account{}, fmt.Errorf("post %s: %w", postID, access.ErrNotFound)
		}
		return Post{}, accounts.Account{}, err
	}

	var owner accounts.Account
	err := db.WithContext(ctx).
		Joins("JOIN users ON users.account_id = accounts.id").
		Where("users.id = ?", post.UserID).
		First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Post{}, accounts.Account{}, fmt.Errorf("owner of post %s: %w", postID, access.ErrNotFound)
		}
		return Post{}, accounts.Account{}, err
	}
	return post, owner, nil
}

func ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]Post, error) {
	var out []Post
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func ListByAlbum(ctx context.Context, db *gorm.DB, albumID uuid.UUID) ([]Post, error) {
	var out []Post
	err := db.WithContext(ctx).
		Joins("JOIN album_posts ON album_posts.post_id = posts.id").
		Where("album_posts.album_id = ?", albumID).
		Order("posts.created_at DESC").
		Find(&out).Error
	return out, err
}

// ListAdmin is the unfiltered listing; route it behind the admin role gate
// only.
func ListAdmin(ctx context.Context, db *gorm.DB) ([]Post, error) {
	var out []Post
	err := db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}
