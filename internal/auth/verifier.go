package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier checks a presented secret against stored
// credentials. The admin panel depends on this interface only, so the
// hash source can change without touching the handlers.
type CredentialVerifier interface {
	Verify(secret string) bool
}

// BcryptVerifier compares against a bcrypt hash supplied at startup.
type BcryptVerifier struct {
	hash []byte
}

func NewBcryptVerifier(hash string) *BcryptVerifier {
	return &BcryptVerifier{hash: []byte(hash)}
}

func (v *BcryptVerifier) Verify(secret string) bool {
	return bcrypt.CompareHashAndPassword(v.hash, []byte(secret)) == nil
}

// HashSecret produces a bcrypt hash for provisioning credentials.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
