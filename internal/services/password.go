package services

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt encoding of a password. Each call salts
// independently, so repeated calls on the same input produce different
// encodings that all verify.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword reports whether password matches the stored encoding.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
