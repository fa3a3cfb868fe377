package validate

import (
	"travel_agency/model"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func CreateEnquiry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEnquiryInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}
