package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when no account matches, so a failed login
// costs the same whether or not the email exists.
var (
	dummyHash     []byte
	dummyHashOnce sync.Once
)

// HashPassword creates a bcrypt hash from the given plaintext password.
func HashPassword(password string) (string, error) {
	// higher cost is slower for attackers and for us; DefaultCost (10) is the usual compromise
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword checks if the provided plaintext password matches the stored bcrypt hash.
func VerifyPassword(hashedPassword, providedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword))
}

// BurnCompare spends one bcrypt comparison and discards the result.
func BurnCompare(providedPassword string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(providedPassword))
}
