package validate

import (
	"travel_agency/model"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("loginInput", input)
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ForgotPasswordInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("forgotInput", input)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ResetPasswordInput
		if !body(c, &input) {
			return nil
		}

		c.Locals("resetInput", input)
		return c.Next()
	}
}
