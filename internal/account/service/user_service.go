package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/AnthoniusHendriyanto/account-service/internal/account/domain UserRepository

import (
	"context"

	"github.com/AnthoniusHendriyanto/account-service/internal/account/domain"
	"github.com/AnthoniusHendriyanto/account-service/internal/account/dto"
	apperrors "github.com/AnthoniusHendriyanto/account-service/internal/errors"
)

type UserService struct {
	repo   domain.UserRepository
	hasher domain.PasswordHasher
	tokens TokenGenerator
}

func NewUserService(repo domain.UserRepository, hasher domain.PasswordHasher, tokens TokenGenerator) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Signup registers a new account. imageName is the original filename of the
// uploaded profile image; the response never contains the password hash.
func (s *UserService) Signup(ctx context.Context, input dto.SignupInput, imageName string) (*dto.SignupResponse, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		Nickname:     input.Nickname,
		ProfileImage: imageName,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.SignupResponse{
		Email:        user.Email,
		Nickname:     user.Nickname,
		ProfileImage: user.ProfileImage,
	}, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
// Nothing is persisted; the tokens are self-contained.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if !s.hasher.Compare(input.Password, user.PasswordHash) {
		return nil, apperrors.ErrUserPasswordNotMatched
	}

	accessToken, err := s.tokens.Issue(user.Email, false)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.Issue(user.Email, true)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Withdraw deletes the account of the resolved identity. Deleting an email
// with no record is a no-op.
func (s *UserService) Withdraw(ctx context.Context, email string) error {
	return s.repo.DeleteByEmail(ctx, email)
}
