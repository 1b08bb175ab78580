package auth

// CredentialStore compares a stored credential against a supplied one. The
// directory stores PINs verbatim today; hashing can be introduced behind this
// interface without touching the rest of the contract.
type CredentialStore interface {
	Verify(stored, supplied string) bool
}

// PlainCredentialStore compares credentials with an exact string match, the
// behavior of the original schema (no normalization, no hashing).
type PlainCredentialStore struct{}

// NewPlainCredentialStore creates the exact-match credential store.
func NewPlainCredentialStore() *PlainCredentialStore {
	return &PlainCredentialStore{}
}

// Verify reports whether the supplied PIN matches the stored one exactly.
func (*PlainCredentialStore) Verify(stored, supplied string) bool {
	return stored == supplied
}
