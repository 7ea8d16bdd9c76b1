package security

import (
	"github.com/jaevor/go-nanoid"
	"golang.org/x/crypto/bcrypt"
)

const otpLength = 6

// GenerateOTP returns a fresh 6-digit numeric confirmation code.
func GenerateOTP() (string, error) {
	codeGenerator, err := nanoid.CustomASCII("0123456789", otpLength)
	if err != nil {
		return "", err
	}
	return codeGenerator(), nil
}

// HashOTP derives the one-way hash stored on the order. The plaintext
// code is never persisted.
func HashOTP(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompareOTP reports whether code matches the stored hash. bcrypt's
// comparison is constant-time over the derived key.
func CompareOTP(hash, code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
