package handler

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"travel_agency/constants"
	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/store"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

// Login authenticates against the credential store and additionally
// requires the email to be allow-listed before any session is issued.
// Being able to log in is not the same as being an admin.
func (h *Handler) Login(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginInput)

	account, err := h.store.GetAccountByEmail(input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, nil)
		}
		if errors.Is(err, store.ErrNotConfigured) {
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ERROR_STORE_UNAVAILABLE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, nil)
	}

	listed, err := h.store.IsAdminEmail(account.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !listed {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message":  constants.NOT_AUTHORIZED,
			"redirect": constants.LOGIN_UNAUTHORIZED_PATH,
		})
	}

	tokenClaim := model.TokenClaim{AccountId: account.ID, Email: account.Email}
	accessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.SetSessionCookies(c, accessToken, refreshToken)

	return c.JSON(fiber.Map{
		"message": "login success",
		"account": fiber.Map{
			"id":    account.ID,
			"email": account.Email,
		},
	})
}

func (h *Handler) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "refresh token not found"})
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid refresh token"})
	}

	claim := helper.ClaimFromToken(token)
	if claim.Email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid refresh token"})
	}

	// refresh re-checks the allow-list: a revoked admin cannot extend a
	// session that outlived their listing
	listed, err := h.store.IsAdminEmail(claim.Email)
	if err != nil || !listed {
		helper.ClearSessionCookies(c)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message":  constants.NOT_AUTHORIZED,
			"redirect": constants.LOGIN_UNAUTHORIZED_PATH,
		})
	}

	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newRefreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.SetSessionCookies(c, accessToken, newRefreshToken)
	return c.JSON(fiber.Map{"message": "token refreshed"})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	helper.ClearSessionCookies(c)
	return c.JSON(fiber.Map{"message": "logged out"})
}

// Me returns the session identity behind the admin gate.
func (h *Handler) Me(c *fiber.Ctx) error {
	claim := c.Locals("claim").(model.TokenClaim)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":    claim.AccountId,
		"email": claim.Email,
	})
}

// ForgotPassword always acknowledges, whether or not the email matches an
// account, to avoid leaking which addresses exist.
func (h *Handler) ForgotPassword(c *fiber.Ctx) error {
	input := c.Locals("forgotInput").(model.ForgotPasswordInput)

	ack := fiber.Map{"message": "If that email exists, a reset link has been sent"}

	account, err := h.store.GetAccountByEmail(input.Email)
	if err != nil {
		return c.JSON(ack)
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	token := hex.EncodeToString(tokenBytes)

	resetToken := model.PasswordResetToken{
		AccountId: account.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := h.store.CreateResetToken(&resetToken); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.SendPasswordResetEmail(account.Email, token)
	return c.JSON(ack)
}

// ResetPassword consumes a single-use token and stores the new hash.
func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	input := c.Locals("resetInput").(model.ResetPasswordInput)

	resetToken, err := h.store.ConsumeResetToken(input.Token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Reset token is invalid or expired", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account, err := h.store.GetAccount(resetToken.AccountId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account.Password = hash
	if err := h.store.SaveAccount(account); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{"message": "password updated"})
}
