package posts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mishaszu/imagery-storage/internal/domain/access"
	"github.com/mishaszu/imagery-storage/internal/domain/accounts"
	"github.com/mishaszu/imagery-storage/internal/domain/albums"
)

// Service wraps post reads with access resolution. All methods are pure
// read-compute-filter; nothing here writes.
type Service struct {
	db       *gorm.DB
	resolver *access.Resolver
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, resolver: access.NewResolver(accounts.NewDirectory(db))}
}

// ListScope selects whose posts are listed: a user's feed or an album's
// contents.
type ListScope struct {
	UserID  *uuid.UUID
	AlbumID *uuid.UUID
}

func ForUser(userID uuid.UUID) ListScope   { return ListScope{UserID: &userID} }
func ForAlbum(albumID uuid.UUID) ListScope { return ListScope{AlbumID: &albumID} }

// GetForSeeker fetches one post for a possibly-anonymous seeker. The returned
// post is nil when the seeker may know it exists but not see it. A post kept
// off the feed is reachable only through an album route, capped by the most
// permissive containing album.
func (s *Service) GetForSeeker(ctx context.Context, seekerUserID *uuid.UUID, postID uuid.UUID) (access.Level, *Post, error) {
	post, owner, err := GetWithOwner(ctx, s.db, postID)
	if err != nil {
		return access.LevelNone, nil, err
	}

	level, err := s.resolver.Resolve(ctx, seekerUserID, owner.Snapshot())
	if err != nil {
		return access.LevelNone, nil, err
	}
	if level == access.LevelOwner || level == access.LevelAdmin {
		return level, &post, nil
	}

	d := access.Single(level, post.GateVisibility())
	if !post.AddToFeed {
		albumVis, err := albums.VisibilitiesForPost(ctx, s.db, postID)
		if err != nil {
			return access.LevelNone, nil, err
		}
		d = bestAlbumRoute(level, d, albumVis)
	}

	switch d {
	case access.Granted:
		return level, &post, nil
	case access.Redacted:
		return level, nil, nil
	default:
		return level, nil, access.ErrAccessDenied
	}
}

// bestAlbumRoute caps the post's own decision by each containing album's gate
// and keeps the most permissive route. No albums means no route.
func bestAlbumRoute(level access.Level, post access.Decision, albumVis []access.Visibility) access.Decision {
	best := access.Denied
	for _, av := range albumVis {
		d := post
		if ad := access.Single(level, av); ad < d {
			d = ad
		}
		if d > best {
			best = d
		}
	}
	return best
}

// ListForSeeker lists posts under a scope. Denied items are dropped, redacted
// ones come back as nil slots, order follows the store's ordering. A seeker
// with no access to the scope's owner gets ErrAccessDenied.
func (s *Service) ListForSeeker(ctx context.Context, seekerUserID *uuid.UUID, scope ListScope) (access.Level, []*Post, error) {
	switch {
	case scope.UserID != nil:
		owner, err := accounts.NewDirectory(s.db).GetAccountByUser(ctx, *scope.UserID)
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
		list, err := ListByUser(ctx, s.db, *scope.UserID)
		if err != nil {
			return access.LevelNone, nil, err
		}
		return level, access.FetchList(level, list, access.ToFeed()), nil

	case scope.AlbumID != nil:
		album, owner, err := albums.GetWithOwner(ctx, s.db, *scope.AlbumID)
		if err != nil {
			return access.LevelNone, nil, err
		}
		level, err := s.resolver.Resolve(ctx, seekerUserID, owner.Snapshot())
		if err != nil {
			return access.LevelNone, nil, err
		}
		if level == access.LevelNone {
			return level, nil, access.ErrAccessDenied
		}
		list, err := ListByAlbum(ctx, s.db, *scope.AlbumID)
		if err != nil {
			return access.LevelNone, nil, err
		}
		return level, access.FetchList(level, list, access.ToAlbum(album.GateVisibility())), nil

	default:
		return access.LevelNone, nil, access.ErrNotFound
	}
}

// LevelFor resolves the seeker's access to the post's owner, for write-guard
// checks on mutations.
func (s *Service) LevelFor(ctx context.Context, seekerUserID *uuid.UUID, postID uuid.UUID) (access.Level, Post, error) {
	post, owner, err := GetWithOwner(ctx, s.db, postID)
	if err != nil {
		return access.LevelNone, Post{}, err
	}
	level, err := s.resolver.Resolve(ctx, seekerUserID, owner.Snapshot())
	if err != nil {
		return access.LevelNone, Post{}, err
	}
	return level, post, nil
}
