package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/scrypt"
)

// deriveKey stretches a passphrase into a KeyLength-byte key using scrypt.
// The caller owns the returned slice and is responsible for wiping it.
func deriveKey(passphrase, salt []byte) ([]byte, error) {
	return scrypt.Key(passphrase, salt, scryptN, scryptR, scryptP, KeyLength)
}

// newSalt fills a fresh SaltLength-byte salt from the system CSPRNG.
func newSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}
