package validate

import (
	"errors"
	"strconv"

	"travel_agency/constants"
	"travel_agency/model"
	"travel_agency/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTour() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTourInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func EditTour(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valueKey, err := strconv.Atoi(c.Params(key))
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditTourInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("updateInput", input)
		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

func TourFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := new(model.TourFilter)
		if err := c.QueryParser(filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("filter", *filter)
		return c.Next()
	}
}
