package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("hash: empty password")

// Cost is the bcrypt work factor for new hashes.
var Cost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	b, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("hash: bcrypt: %w", err)
	}
	return string(b), nil
}

// CheckPassword reports whether password matches the stored hash. An empty
// or malformed hash never matches.
func CheckPassword(stored, password string) bool {
	if stored == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
