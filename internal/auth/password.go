package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the dashboard has always used. Raising it
// invalidates nothing (bcrypt embeds the cost) but slows every login.
const bcryptCost = 10

// HashPassword derives a salted one-way hash from a plaintext password.
// The plaintext is never stored or logged.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
