package domain

import "context"

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	// DeleteByEmail is a no-op when no user matches.
	DeleteByEmail(ctx context.Context, email string) error
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hash string) bool
}
