package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes an admin password with bcrypt.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CompareInBcrypt compares a bcrypt hashed value against a plain string.
func CompareInBcrypt(hashed, plain string) bool {
	return nil == bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
