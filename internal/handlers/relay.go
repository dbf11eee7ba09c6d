package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jjenkins/legiscan-relay/internal/service"
)

// HeaderUpstreamStatus carries LegiScan's own status field on relayed responses
const HeaderUpstreamStatus = "X-Upstream-Status"

// Fetcher performs one upstream call and returns the raw body
type Fetcher interface {
	Fetch(ctx context.Context, op service.Operation, params service.Params) (string, error)
}

// Defaults are the request parameters used when a route is called without overrides
type Defaults struct {
	State     string
	SessionID uint32
	Year      int
}

// Relay wires the upstream gateway to the shape validator for every route
type Relay struct {
	fetcher   Fetcher
	validator *service.Validator
	defaults  Defaults
	logger    *zap.Logger
}

// NewRelay creates a Relay. A nil logger disables logging.
func NewRelay(fetcher Fetcher, validator *service.Validator, defaults Defaults, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{
		fetcher:   fetcher,
		validator: validator,
		defaults:  defaults,
		logger:    logger,
	}
}

var validate = validator.New()

// fetch calls upstream, logging failures
func (r *Relay) fetch(c *fiber.Ctx, op service.Operation, params service.Params) (string, error) {
	raw, err := r.fetcher.Fetch(c.UserContext(), op, params)
	if err != nil {
		r.logger.Error("upstream call failed",
			zap.String("op", string(op)),
			zap.Error(err))
		return "", err
	}
	return raw, nil
}

// relay fetches, validates against the operation's shape and sends the
// original bytes. On decode failure the raw text is not relayed.
func (r *Relay) relay(c *fiber.Ctx, op service.Operation, params service.Params) error {
	shape, err := service.ShapeFor(op)
	if err != nil {
		return err
	}

	raw, err := r.fetch(c, op, params)
	if err != nil {
		return err
	}

	decoded, err := r.validator.Validate(shape, raw)
	if err != nil {
		r.logger.Error("upstream response failed validation",
			zap.String("op", string(op)),
			zap.String("shape", string(shape)),
			zap.Error(err))
		return err
	}

	r.noteStatus(c, op, service.UpstreamStatus(decoded))
	return sendText(c, raw)
}

// noteStatus tags the response with LegiScan's status. Non-OK bodies are
// still relayed with 200.
func (r *Relay) noteStatus(c *fiber.Ctx, op service.Operation, status string) {
	if status == "" {
		return
	}
	c.Set(HeaderUpstreamStatus, status)
	if !service.IsUpstreamOK(status) {
		r.logger.Warn("upstream reported non-OK status",
			zap.String("op", string(op)),
			zap.String("status", status))
	}
}

func sendText(c *fiber.Ctx, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(body)
}

// parseID reads an unsigned 32-bit path parameter
func parseID(c *fiber.Ctx, name string) (uint32, error) {
	n, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint32(n), nil
}

// overrides are the optional query parameters accepted by the fixed routes
type overrides struct {
	State string `query:"state" validate:"omitempty,len=2,alpha"`
	Year  int    `query:"year" validate:"omitempty,gte=1900,lte=2200"`
	ID    uint32 `query:"id"`
}

func parseOverrides(c *fiber.Ctx) (overrides, error) {
	var o overrides
	if err := c.QueryParser(&o); err != nil {
		return o, fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := validate.Struct(&o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return o, fiber.NewError(fiber.StatusBadRequest, "Invalid "+strings.ToLower(verrs[0].Field())+" parameter")
		}
		return o, fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	return o, nil
}

func (r *Relay) state(o overrides) string {
	if o.State != "" {
		return strings.ToUpper(o.State)
	}
	return r.defaults.State
}
