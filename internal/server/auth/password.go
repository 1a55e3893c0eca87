package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// HashPassword computes a salted one-way hash of the password with the given
// bcrypt cost. Cost values outside bcrypt's supported range fall back to the
// library default.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies the candidate against the stored hash. The
// comparison is constant-time inside bcrypt. Returns
// common.ErrorInvalidCredentials on mismatch.
func CheckPassword(hash, candidate string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)); err != nil {
		return common.ErrorInvalidCredentials
	}
	return nil
}
