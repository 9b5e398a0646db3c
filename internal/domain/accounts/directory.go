package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
)

// Directory is the gorm-backed access.Directory. It only reads; account and
// referral mutations live in the handlers.
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

var _ access.Directory = (*Directory)(nil)

func (d *Directory) GetAccount(ctx context.Context, id uuid.UUID) (access.Account, error) {
	var acc Account
	if err := d.db.WithContext(ctx).Where("id = ?", id).First(&acc).Error; err != nil {
		return access.Account{}, translate(err, "account", id)
	}
	return acc.Snapshot(), nil
}

func (d *Directory) GetAccountByUser(ctx context.Context, userID uuid.UUID) (access.Account, error) {
	var acc Account
	err := d.db.WithContext(ctx).
		Joins("JOIN users ON users.account_id = accounts.id").
		Where("users.id = ?", userID).
		First(&acc).Error
	if err != nil {
		return access.Account{}, translate(err, "account of user", userID)
	}
	return acc.Snapshot(), nil
}

func (d *Directory) HasSubscription(ctx context.Context, seekerID, targetID uuid.UUID) (bool, error) {
	var refs []Referral
	err := d.db.WithContext(ctx).
		Where("referrer_id = ? AND subscriber_id = ?", targetID, seekerID).
		Find(&refs).Error
	if err != nil {
		return false, err
	}
	now := time.Now()
	for _, ref := range refs {
		if !ref.Expired(now) {
			return true, nil
		}
	}
	return false, nil
}

// translate maps gorm's record-not-found onto the domain error; anything else
// is an infrastructure failure and passes through.
func translate(err error, what string, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", what, id, access.ErrNotFound)
	}
	return err
}
