package service

import (
	"golang.org/x/crypto/bcrypt"
)

// Sumber lama menyimpan & membandingkan password plaintext.
// Di sini wajib bcrypt: yang tersimpan selalu digest, bukan plaintext.

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash membandingkan digest tersimpan dengan password submit.
func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
