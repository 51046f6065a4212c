// Package service declares the ports the use cases depend on: identity, storage, audit and event publishing.
package service

// PasswordHasher hashes passwords for accounts held by the local identity provider.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
