package validate

import (
	"travel_agency/model"

	"github.com/gofiber/fiber/v2"
)

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReviewInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}
