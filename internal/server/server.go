// Package server assembles the fiber application: middleware, CORS, error
// mapping and the relay routes.
package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jjenkins/legiscan-relay/internal/handlers"
)

const appName = "LegiScan Relay"

// Options tweaks app construction
type Options struct {
	Logger *zap.Logger
	// AccessLog enables the fiber request logger middleware.
	AccessLog bool
}

// New builds the fiber app with every relay route registered
func New(relay *handlers.Relay, opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	// No cookies or credentials are forwarded, so any origin may call the relay.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodHead,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodPatch,
			fiber.MethodOptions,
		}, ","),
		AllowHeaders: "",
	}))

	Register(app, relay)

	return app
}

// Register mounts the relay routes on router
func Register(router fiber.Router, relay *handlers.Relay) {
	router.Get("/", handlers.HomeHandler())

	// Session routes
	router.Get("/sessions", handlers.SessionsHandler(relay))
	router.Get("/sessions_name", handlers.SessionNamesHandler(relay))

	// Master list routes
	router.Get("/master_list_raw", handlers.MasterListRawHandler(relay))
	router.Get("/master_list", handlers.MasterListRawHandler(relay))
	router.Get("/masterlist", handlers.MasterListHandler(relay))

	// Detail routes
	router.Get("/get_bill/:bill_id", handlers.BillHandler(relay))
	router.Get("/person/:people_id", handlers.PersonHandler(relay))
}

// errorHandler sends every failure as text/plain. Errors that are not
// *fiber.Error (upstream and decode failures) become 500.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Debug("request failed",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err))
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(err.Error())
	}
}
