package service

import "golang.org/x/crypto/bcrypt"

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12
)

// PasswordDigest is the one-way transform used to store and check
// credentials. Digest produces the stored form at registration; Verify
// checks a presented password against it at login. Verification goes
// through the interface rather than string equality because salted
// digests never compare equal.
type PasswordDigest interface {
	Digest(plaintext string) (string, error)
	Verify(plaintext, stored string) bool
}

// BcryptDigest implements PasswordDigest with bcrypt.
type BcryptDigest struct{}

func (BcryptDigest) Digest(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptDigest) Verify(plaintext, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}
