package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/AnthoniusHendriyanto/account-service/internal/account/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/AnthoniusHendriyanto/account-service/internal/errors"
)

type TokenGenerator interface {
	Issue(email string, isRefreshToken bool) (string, error)
	DecodeUnverified(tokenString string) (*TokenClaims, error)
	VerifyAccessToken(tokenString string) (*TokenClaims, error)
}

// TokenClaims is the self-contained claim set carried by every issued token.
// IsRefreshToken discriminates the token kind; each kind is signed with its
// own secret and expiry.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email          string `json:"email"`
	IsRefreshToken bool   `json:"isRefreshToken"`
}

type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

// Issue signs a token for the given identity. The secret and expiry are
// selected by kind; nothing is stored, tokens are self-contained.
func (ts *TokenService) Issue(email string, isRefreshToken bool) (string, error) {
	secret := ts.AccessTokenSecret
	expiry := ts.AccessTokenExpiry

	if isRefreshToken {
		secret = ts.RefreshTokenSecret
		expiry = ts.RefreshTokenExpiry
	}

	now := time.Now()
	claims := TokenClaims{
		Email:          email,
		IsRefreshToken: isRefreshToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// DecodeUnverified extracts the claim set without checking the signature or
// expiry. The auth guard uses it to inspect the token kind before full
// verification.
func (ts *TokenService) DecodeUnverified(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// VerifyAccessToken parses and validates the given access token string.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.AccessTokenSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
