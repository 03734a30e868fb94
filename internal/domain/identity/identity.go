// Package identity carries the verified caller identity resolved by the
// auth gateway. The core trusts it and performs no credential checks.
package identity

type Identity struct {
	UserID string
	Admin  bool
}

// CanActFor reports whether the caller may act on resources owned by userID.
func (i Identity) CanActFor(userID string) bool {
	return i.Admin || i.UserID == userID
}
