package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HomeHandler answers liveness checks
func HomeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return sendText(c, "Hello, World!")
	}
}
