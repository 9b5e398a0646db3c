package users

import (
	"github.com/google/uuid"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
	"github.com/mishaszu/imagery-storage/internal/domain/accounts"
)

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Nick      string    `json:"nick"`
	Email     *string   `json:"email,omitempty"`
	Kind      string    `json:"kind"`
	PublicLvl int       `json:"public_lvl"`
	IsBanned  bool      `json:"is_banned"`
}

// toUserDTO shapes a user for the given resolved level. Email is owner/admin
// only.
func toUserDTO(user accounts.User, account accounts.Account, level access.Level) UserDTO {
	dto := UserDTO{
		ID:        user.ID,
		Nick:      user.Nick,
		Kind:      account.Kind,
		PublicLvl: account.PublicLvl,
		IsBanned:  account.IsBanned,
	}
	if level == access.LevelOwner || level == access.LevelAdmin {
		email := user.Email
		dto.Email = &email
	}
	return dto
}
