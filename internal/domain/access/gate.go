package access

// Decision is the outcome of gating one resource at one access level.
// Ordered least to most permissive so the album minimum rule is a plain min.
type Decision int8

const (
	Denied Decision = iota
	Redacted
	Granted
)

// Gated is the metadata the gate reads off a resource. Implemented by posts,
// albums and images.
type Gated interface {
	GateVisibility() Visibility
	InFeed() bool
}

// Single gates one resource. Redacted means the caller may acknowledge the
// resource exists but must withhold its content; Denied should surface as
// not-found.
func Single(level Level, v Visibility) Decision {
	switch level {
	case LevelOwner, LevelAdmin:
		return Granted
	case LevelSubscriber:
		if v >= VisibilitySubscribers {
			return Granted
		}
	case LevelPublic:
		if v == VisibilityPublic {
			return Granted
		}
		if v == VisibilitySubscribers {
			return Redacted
		}
	}
	return Denied
}

// FetchOne applies Single to a fetched resource. A redacted resource comes
// back as nil with no error; denial is ErrAccessDenied.
func FetchOne[T Gated](level Level, res T) (*T, error) {
	switch Single(level, res.GateVisibility()) {
	case Granted:
		return &res, nil
	case Redacted:
		return nil, nil
	default:
		return nil, ErrAccessDenied
	}
}

// ListScope selects the extra gate a listing runs under.
type ListScope int8

const (
	// ScopeFeed lists a user's feed: resources not flagged for the feed are
	// omitted outright, not redacted.
	ScopeFeed ListScope = iota
	// ScopeAlbum lists an album's contents: each item is capped by the album's
	// own gate, so a public item inside a restricted album stays hidden and a
	// public album does not unlock a private item.
	ScopeAlbum
)

// ListContext carries the scope and, for album listings, the album's own
// visibility.
type ListContext struct {
	Scope ListScope
	Album Visibility
}

func ToFeed() ListContext {
	return ListContext{Scope: ScopeFeed}
}

func ToAlbum(album Visibility) ListContext {
	return ListContext{Scope: ScopeAlbum, Album: album}
}

// FetchList gates a slice of resources under one resolved level. Input order
// is preserved; denied items are dropped, redacted items keep their slot as a
// nil entry.
func FetchList[T Gated](level Level, items []T, lc ListContext) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		item := item
		if lc.Scope == ScopeFeed && !item.InFeed() {
			continue
		}
		d := Single(level, item.GateVisibility())
		if lc.Scope == ScopeAlbum {
			if ad := Single(level, lc.Album); ad < d {
				d = ad
			}
		}
		switch d {
		case Granted:
			out = append(out, &item)
		case Redacted:
			out = append(out, nil)
		}
	}
	return out
}
