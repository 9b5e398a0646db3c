package albums

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
	"github.com/mishaszu/imagery-storage/internal/domain/accounts"
)

type Service struct {
	db       *gorm.DB
	resolver *access.Resolver
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, resolver: access.NewResolver(accounts.NewDirectory(db))}
}

// GetForSeeker fetches one album; nil album with nil error means redacted.
func (s *Service) GetForSeeker(ctx context.Context, seekerUserID *uuid.UUID, albumID uuid.UUID) (access.Level, *Album, error) {
	album, owner, err := GetWithOwner(ctx, s.db, albumID)
	if err != nil {
		return access.LevelNone, nil, err
	}
	level, err := s.resolver.Resolve(ctx, seekerUserID, owner.Snapshot())
	if err != nil {
		return access.LevelNone, nil, err
	}
	res, err := access.FetchOne(level, album)
	if err != nil {
		return level, nil, err
	}
	return level, res, nil
}

// LevelFor resolves the seeker's access to the album's owner, for write-guard
// checks on mutations.
func (s *Service) LevelFor(ctx context.Context, seekerUserID *uuid.UUID, albumID uuid.UUID) (access.Level, Album, error) {
	album, owner, err := GetWithOwner(ctx, s.db, albumID)
	if err != nil {
		return access.LevelNone, Album{}, err
	}
	level, err := s.resolver.Resolve(ctx, seekerUserID, owner.Snapshot())
	if err != nil {
		return access.LevelNone, Album{}, err
	}
	return level, album, nil
}

// ListForSeeker lists a user's albums, redacting under-leveled ones.
func (s *Service) ListForSeeker(ctx context.Context, seekerUserID *uuid.UUID, userID uuid.UUID) (access.Level, []*Album, error) {
	owner, err := accounts.NewDirectory(s.db).GetAccountByUser(ctx, userID)
	if err != nil {
		return access.LevelNone, nil, err
	}
	level, err := s.resolver.Resolve(ctx, seekerUserID, owner)
	if err != nil {
		return access.LevelNone, nil, err
	}
	if level == access.LevelNone {
		return level, nil, access.ErrAccessDenied
	}
	list, err := ListByUser(ctx, s.db, userID)
	if err != nil {
		return access.LevelNone, nil, err
	}
	out := make([]*Album, 0, len(list))
	for _, a := range list {
		a := a
		switch access.Single(level, a.GateVisibility()) {
		case access.Granted:
			out = append(out, &a)
		case access.Redacted:
			out = append(out, nil)
		}
	}
	return level, out, nil
}
