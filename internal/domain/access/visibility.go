package access

// Visibility is the openness an account, album or post is configured with,
// stored as the public_lvl column. Higher is more open; this is the opposite
// direction of Level ranks, so the two scales never compare directly — the
// gate translates between them.
type Visibility int

const (
	VisibilityPrivate     Visibility = 0
	VisibilitySubscribers Visibility = 1
	VisibilityPublic      Visibility = 2
)

func (v Visibility) Valid() bool {
	return v >= VisibilityPrivate && v <= VisibilityPublic
}

func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilitySubscribers:
		return "subscribers"
	case VisibilityPublic:
		return "public"
	default:
		return "unknown"
	}
}
