package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the hashing cost for stored secrets
const BcryptCost = 12

// HashSecret hashes a shared secret for storage in configuration
func HashSecret(secret string) (string, error) {
	return HashSecretWithCost(secret, BcryptCost)
}

// HashSecretWithCost hashes secret with an explicit bcrypt cost
func HashSecretWithCost(secret string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckSecret compares a presented secret with its bcrypt hash
func CheckSecret(hashedSecret, secret string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedSecret), []byte(secret))
	return err == nil
}
