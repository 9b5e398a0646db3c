package access

// CanEdit decides write permission on a resource. The owner may always edit;
// an admin only where the call site opts in. Read rank ties between owner and
// admin deliberately do not apply here.
func CanEdit(level Level, adminAllowed bool) bool {
	switch level {
	case LevelOwner:
		return true
	case LevelAdmin:
		return adminAllowed
	default:
		return false
	}
}
