package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jjenkins/legiscan-relay/internal/service"
)

// SessionsHandler relays the session list for a state
func SessionsHandler(r *Relay) fiber.Handler {
	return func(c *fiber.Ctx) error {
		o, err := parseOverrides(c)
		if err != nil {
			return err
		}

		return r.relay(c, service.OpGetSessionList, service.Params{State: r.state(o)})
	}
}

// SessionNamesHandler responds with the comma-separated session names for a state
func SessionNamesHandler(r *Relay) fiber.Handler {
	return func(c *fiber.Ctx) error {
		o, err := parseOverrides(c)
		if err != nil {
			return err
		}

		raw, err := r.fetch(c, service.OpGetSessionList, service.Params{State: r.state(o)})
		if err != nil {
			return err
		}

		names, err := r.validator.SessionNames(raw)
		if err != nil {
			r.logger.Error("session list failed validation", zap.Error(err))
			return err
		}

		return sendText(c, strings.Join(names, ", "))
	}
}
