package adapter

// PasswordHasher turns passwords into stored hashes and checks them back.
// Password rules are enforced by the auth use cases, not by the hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns domainerror.ErrInvalidCredentials when password does not
	// produce hash.
	Compare(hash, password string) error
}
