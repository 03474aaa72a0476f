package service

//go:generate mockgen -destination=../../mocks/mock_password_hasher.go -package=mocks github.com/AnthoniusHendriyanto/account-service/internal/account/domain PasswordHasher

import "golang.org/x/crypto/bcrypt"

// BcryptHasher hashes passwords with the configured work factor. Hashing is
// salted, so the same plaintext yields different hashes across calls.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

func (h *BcryptHasher) Compare(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
