package helpers

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	hasUppercase = regexp.MustCompile(`[A-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
func VerifyPassword(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckPasswordStrength enforces the minimum rule for new passwords: at least
// one uppercase letter and one digit.
func CheckPasswordStrength(password string) *AppError {
	if !hasUppercase.MatchString(password) || !hasDigit.MatchString(password) {
		return BadRequest("new password must contain at least one capital letter and one number")
	}
	return nil
}
