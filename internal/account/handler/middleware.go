package handler

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AnthoniusHendriyanto/account-service/internal/account/service"
	apperrors "github.com/AnthoniusHendriyanto/account-service/internal/errors"
)

const identityKey = "identityEmail"

// AuthGuard enforces bearer access tokens on every route not listed in
// public. Keys in public are "METHOD path". On success the subject email is
// attached to the request for downstream handlers.
//
// The token kind is checked on the decoded-but-unverified payload before the
// signature is verified: a refresh token is always rejected as a kind error,
// whatever else is wrong with it.
func AuthGuard(tokens service.TokenGenerator, public map[string]bool, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Non-strict routing also matches trailing-slash variants; normalize
		// so the lookup agrees with the route that will handle the request.
		path := c.Path()
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}

		if public[c.Method()+" "+path] {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			logger.Warn("request without token", "method", c.Method(), "path", c.Path())
			return apperrors.ErrEmptyToken
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" {
			logger.Warn("authorization header is not a bearer token", "method", c.Method(), "path", c.Path())
			return apperrors.ErrNotBearerToken
		}

		unverified, err := tokens.DecodeUnverified(token)
		if err != nil {
			return err
		}
		if unverified.IsRefreshToken {
			logger.Warn("refresh token presented on a protected route", "path", c.Path())
			return apperrors.ErrNotAccessToken
		}

		claims, err := tokens.VerifyAccessToken(token)
		if err != nil {
			return err
		}

		c.Locals(identityKey, claims.Email)

		return c.Next()
	}
}

// IdentityEmail returns the identity attached by the guard, if any. Public
// routes pass through the guard without one.
func IdentityEmail(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals(identityKey).(string)
	return email, ok && email != ""
}
