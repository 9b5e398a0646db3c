package access

import "errors"

// ErrAccessDenied is returned whenever a seeker resolves to LevelNone and the
// caller insists on a value anyway (rank coercion, single fetch). It carries no
// information about which check failed.
var ErrAccessDenied = errors.New("access denied")

// ErrNotFound covers missing accounts and resources. Kept distinct from
// ErrAccessDenied so the domain layer can tell "doesn't exist" from "exists but
// hidden", even if handlers surface both the same way.
var ErrNotFound = errors.New("not found")

// Level is the resolved access a seeker holds over a target account.
//
// Owner and Admin share the best read rank but stay distinct variants: some
// write paths allow only the owner (see CanEdit).
type Level string

const (
	LevelOwner      Level = "owner"
	LevelAdmin      Level = "admin"
	LevelSubscriber Level = "subscriber"
	LevelPublic     Level = "public"
	LevelNone       Level = "none"
)

// Rank maps a level onto its numeric privilege rank, lower is more privileged:
// owner/admin 0, subscriber 1, public 2. LevelNone has no rank; callers must
// branch on it before comparing, so ranking it is ErrAccessDenied rather than
// a sentinel value.
func (l Level) Rank() (int, error) {
	switch l {
	case LevelOwner, LevelAdmin:
		return 0, nil
	case LevelSubscriber:
		return 1, nil
	case LevelPublic:
		return 2, nil
	default:
		return 0, ErrAccessDenied
	}
}

// AtLeast reports whether l is at least as privileged as other. Comparing
// through LevelNone on either side is a caller error.
func (l Level) AtLeast(other Level) (bool, error) {
	lr, err := l.Rank()
	if err != nil {
		return false, err
	}
	or, err := other.Rank()
	if err != nil {
		return false, err
	}
	return lr <= or, nil
}
