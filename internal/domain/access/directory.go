package access

import (
	"context"

	"github.com/google/uuid"
)

// Account is the read-only snapshot of account state the resolver works with.
// The resolver never writes through the directory; bans, admin flags and
// referrals are mutated by the surrounding CRUD layer and simply change future
// resolutions.
type Account struct {
	ID         uuid.UUID
	Kind       string
	IsAdmin    bool
	IsBanned   bool
	Visibility Visibility
}

// Directory is the lookup contract the resolver consumes. Implementations
// should return ErrNotFound (wrapped or bare) for missing accounts and pass
// infrastructure errors through unchanged.
type Directory interface {
	// GetAccount fetches an account snapshot by account id.
	GetAccount(ctx context.Context, id uuid.UUID) (Account, error)

	// GetAccountByUser fetches the account owning the given user id.
	GetAccountByUser(ctx context.Context, userID uuid.UUID) (Account, error)

	// HasSubscription reports whether a non-expired referral edge grants the
	// seeker viewing rights over the target's content.
	HasSubscription(ctx context.Context, seekerID, targetID uuid.UUID) (bool, error)
}
