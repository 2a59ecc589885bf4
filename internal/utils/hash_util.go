package utils

import "golang.org/x/crypto/bcrypt"

// bcryptWorkFactor matches the cost used for all stored credentials.
const bcryptWorkFactor = 10

// Hash derives a bcrypt hash from plain credential bytes.
func Hash(plain []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(plain, bcryptWorkFactor)
}

// CompareHash checks plain credential bytes against a stored bcrypt hash.
func CompareHash(hashed []byte, plain []byte) error {
	return bcrypt.CompareHashAndPassword(hashed, plain)
}
