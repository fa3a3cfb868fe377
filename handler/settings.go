package handler

import (
	"errors"

	"travel_agency/constants"
	"travel_agency/helper"
	"travel_agency/model"
	"travel_agency/store"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GetSettings serves the resolved site configuration. It always succeeds:
// a missing row, a missing field or an unreachable store all fall back to
// the defaults, so no page render ever depends on the database being up.
func (h *Handler) GetSettings(c *fiber.Ctx) error {
	settings := helper.ResolveSettings(h.store)
	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}

// UpdateSettings overlays the submitted fields onto the singleton row.
// Fields left out of the payload keep their stored values.
func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	input := c.Locals("updateInput").(model.UpdateSettingsInput)

	settings, err := h.store.GetSettings()
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load settings", err)
		}
		fresh := model.DefaultSiteSettings()
		settings = &fresh
	}

	if err := copier.CopyWithOption(settings, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := h.store.SaveSettings(settings); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update settings", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}
