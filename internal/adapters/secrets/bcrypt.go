// Package secrets provides password hashing behind a small port
package secrets

import "golang.org/x/crypto/bcrypt"

// Bcrypt hashes and verifies passwords with the bcrypt KDF
type Bcrypt struct{ cost int }

// NewBcrypt constructs a hasher. A cost outside bcrypt's accepted range
// falls back to the library default
func NewBcrypt(cost int) Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Bcrypt{cost: cost}
}

// Hash derives a salted hash from the plaintext password
func (b Bcrypt) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Compare reports whether the plaintext password matches the stored hash
func (b Bcrypt) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
