package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jjenkins/legiscan-relay/internal/service"
)

// MasterListRawHandler relays getMasterListRaw for a session id (?id=, default from config)
func MasterListRawHandler(r *Relay) fiber.Handler {
	return func(c *fiber.Ctx) error {
		o, err := parseOverrides(c)
		if err != nil {
			return err
		}

		id := r.defaults.SessionID
		if o.ID != 0 {
			id = o.ID
		}

		return r.relay(c, service.OpGetMasterListRaw, service.Params{ID: id})
	}
}

// MasterListHandler relays getMasterList for a state and year
func MasterListHandler(r *Relay) fiber.Handler {
	return func(c *fiber.Ctx) error {
		o, err := parseOverrides(c)
		if err != nil {
			return err
		}

		year := r.defaults.Year
		if o.Year != 0 {
			year = o.Year
		}

		return r.relay(c, service.OpGetMasterList, service.Params{State: r.state(o), Year: year})
	}
}
