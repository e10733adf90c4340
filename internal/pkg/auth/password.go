package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes customer credentials at registration and verifies
// them at login. Compare returns a non-nil error on mismatch so callers can
// fold it straight into an invalid-credentials response.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher is the production PasswordHasher. The work factor is fixed at
// construction so every hash in a deployment carries the same cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher with the given bcrypt cost. A non-positive
// cost falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a salted bcrypt digest of the plaintext password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare checks the plaintext password against a stored digest.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
