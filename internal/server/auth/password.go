package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor of the password digests. Raising it makes
// every HashPassword/CheckPassword call proportionally slower.
const bcryptCost = 10

// HashPassword derives a salted bcrypt digest from the plaintext password.
// Each call uses a fresh random salt, so two digests of the same password
// differ.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether password matches the stored digest. A
// malformed digest yields false, never an error.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
