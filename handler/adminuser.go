package handler

import (
	"errors"
	"strings"

	"travel_agency/model"
	"travel_agency/store"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetAdminUsers(c *fiber.Ctx) error {
	users, err := h.store.ListAdminUsers()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load admin users", err)
	}

	response := &model.ResponseCustom{Rows: users, TotalCount: int64(len(users))}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func (h *Handler) CreateAdminUser(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateAdminUserInput)

	user := model.AdminUser{Email: strings.ToLower(strings.TrimSpace(input.Email))}
	if err := h.store.CreateAdminUser(&user); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not add admin user", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

// DeleteAdminUser removes an allow-list entry. Removing your own email is
// allowed: revocation on the next request is exactly the point of the list.
func (h *Handler) DeleteAdminUser(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := h.store.DeleteAdminUser(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Admin user does not exist", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not remove admin user", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
