package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jjenkins/legiscan-relay/internal/service"
)

func BillHandler(r *Relay) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "bill_id")
		if err != nil {
			return err
		}

		return r.relay(c, service.OpGetBill, service.Params{ID: id})
	}
}
