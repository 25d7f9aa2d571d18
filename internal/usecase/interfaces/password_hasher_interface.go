package interfaces

// IPasswordHasher hashes and verifies passwords.
//
// Compare must run in constant time with respect to the stored hash and returns
// a non-nil error on mismatch.
type IPasswordHasher interface {
	Hash(plain string) ([]byte, error)
	Compare(hash []byte, plain string) error
}
