package access

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Resolver computes the Level a seeker holds over a target account. It is
// stateless; every call reads through the directory snapshot it was built
// with.
type Resolver struct {
	dir Directory
}

func NewResolver(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve applies the ranking rules to a possibly-anonymous seeker against a
// target account.
//
// Check order is load-bearing: a banned seeker is cut off before the admin
// check so a banned admin cannot bypass the ban, and owner is checked before
// admin so an owner who happens to be admin still sees owner-specific write
// permissions downstream. Owner and admin are checked before the target's own
// ban so moderation and self-inspection keep working on banned accounts.
func (r *Resolver) Resolve(ctx context.Context, seekerUserID *uuid.UUID, target Account) (Level, error) {
	seeker, ok, err := r.seekerAccount(ctx, seekerUserID)
	if err != nil {
		return LevelNone, err
	}
	if !ok {
		return resolveAnonymous(target), nil
	}

	if seeker.IsBanned {
		return LevelNone, nil
	}
	if seeker.ID == target.ID {
		return LevelOwner, nil
	}
	if seeker.IsAdmin {
		return LevelAdmin, nil
	}
	if target.IsBanned {
		return LevelNone, nil
	}

	subscribed, err := r.dir.HasSubscription(ctx, seeker.ID, target.ID)
	if err != nil {
		return LevelNone, err
	}
	if subscribed && target.Visibility >= VisibilitySubscribers {
		return LevelSubscriber, nil
	}
	if target.Visibility == VisibilityPublic {
		return LevelPublic, nil
	}
	return LevelNone, nil
}

// ResolveTarget is Resolve with the target looked up by account id.
func (r *Resolver) ResolveTarget(ctx context.Context, seekerUserID *uuid.UUID, targetID uuid.UUID) (Level, error) {
	target, err := r.dir.GetAccount(ctx, targetID)
	if err != nil {
		return LevelNone, err
	}
	return r.Resolve(ctx, seekerUserID, target)
}

// seekerAccount resolves the optional seeker user id to an account. A dangling
// id degrades to anonymous rather than failing the whole resolution; any other
// directory error propagates as infrastructure failure.
func (r *Resolver) seekerAccount(ctx context.Context, seekerUserID *uuid.UUID) (Account, bool, error) {
	if seekerUserID == nil {
		return Account{}, false, nil
	}
	acc, err := r.dir.GetAccountByUser(ctx, *seekerUserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Account{}, false, nil
		}
		return Account{}, false, err
	}
	return acc, true, nil
}

func resolveAnonymous(target Account) Level {
	if target.IsBanned {
		return LevelNone
	}
	if target.Visibility == VisibilityPublic {
		return LevelPublic
	}
	return LevelNone
}
