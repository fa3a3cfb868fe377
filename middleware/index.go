package middleware

import (
	"errors"
	"strings"

	"travel_agency/constants"
	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/store"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthResult is the outcome of the single authorization policy consulted by
// the admin gate. "Authenticated" (a valid session token) and "authorized"
// (session email present in the admin allow-list) are distinct on purpose:
// any account that can log in is rejected unless explicitly allow-listed.
type AuthResult struct {
	HasSession    bool
	IsAllowListed bool
	Claim         model.TokenClaim
}

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

// Authorize evaluates {has-session, is-allow-listed} for the request.
func Authorize(c *fiber.Ctx, st store.Store) (AuthResult, error) {
	raw := tokenFromRequest(c)
	if raw == "" {
		return AuthResult{}, nil
	}

	token, err := helper.ParseToken(raw)
	if err != nil || !token.Valid {
		return AuthResult{}, nil
	}

	claim := helper.ClaimFromToken(token)
	if claim.Email == "" {
		return AuthResult{}, nil
	}

	listed, err := st.IsAdminEmail(claim.Email)
	if err != nil {
		return AuthResult{HasSession: true, Claim: claim}, err
	}
	return AuthResult{HasSession: true, IsAllowListed: listed, Claim: claim}, nil
}

// Protected gates admin routes. No session redirects to the login page;
// a session whose email has been removed from the allow-list is forcibly
// signed out and redirected with an unauthorized indicator, even though the
// token itself is still valid.
func Protected(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := Authorize(c, st)
		if err != nil {
			if errors.Is(err, store.ErrNotConfigured) {
				return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ERROR_STORE_UNAVAILABLE, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if !result.HasSession {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  "Authentication required",
				"redirect": constants.LOGIN_PATH,
			})
		}

		if !result.IsAllowListed {
			helper.ClearSessionCookies(c)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  constants.NOT_AUTHORIZED,
				"redirect": constants.LOGIN_UNAUTHORIZED_PATH,
			})
		}

		c.Locals("claim", result.Claim)
		return c.Next()
	}
}
