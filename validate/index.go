package validate

import (
	"errors"
	"strconv"

	"travel_agency/constants"
	"travel_agency/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById parses a numeric path parameter and stores it in locals.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valueKey, err := strconv.Atoi(c.Params(key))
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

// body parses the request body into input and runs struct validation.
// It writes the error response itself and reports whether to continue.
func body(c *fiber.Ctx, input any) bool {
	if err := c.BodyParser(input); err != nil {
		utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		return false
	}
	if err := validate.Struct(input); err != nil {
		utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		return false
	}
	return true
}
