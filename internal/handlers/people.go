package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jjenkins/legiscan-relay/internal/service"
)

func PersonHandler(r *Relay) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "people_id")
		if err != nil {
			return err
		}

		return r.relay(c, service.OpGetPerson, service.Params{ID: id})
	}
}
