package validate

import (
	"travel_agency/model"

	"github.com/gofiber/fiber/v2"
)

func UpdateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateSettingsInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("updateInput", input)
		return c.Next()
	}
}

func CreateAdminUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAdminUserInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}
