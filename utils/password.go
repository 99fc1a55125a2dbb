package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword produces an encoded argon2id hash carrying its own salt
// and parameters, suitable for storing in users.password_hash.
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()
	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks a plaintext password against a stored encoded
// hash. A mismatch is (false, nil); an error means the stored hash is
// malformed.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
