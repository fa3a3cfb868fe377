package validate

import (
	"errors"
	"strconv"

	"travel_agency/constants"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePostInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func EditPost(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valueKey, err := strconv.Atoi(c.Params(key))
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditPostInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("updateInput", input)
		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}
