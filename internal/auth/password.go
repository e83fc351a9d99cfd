package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/estivensal7/Moment-API/internal/common"
)

const bcryptCost = 12

// HashPassword runs the one-way bcrypt transform used at registration.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a stored hash against a plaintext candidate and
// returns common.ErrInvalidCredentials on mismatch. bcrypt's comparison is
// constant-time on the digest.
func CheckPassword(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}
