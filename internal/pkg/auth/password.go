package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the hashing cost for stored passwords
	BcryptCost = 12
	// MaxPasswordBytes is the longest input bcrypt accepts
	MaxPasswordBytes = 72
)

// HashPassword hashes a plain-text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a bcrypt hash with a plain-text password
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
