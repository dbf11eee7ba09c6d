package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jjenkins/legiscan-relay/internal/service"
)

type fixedFetcher struct {
	body string
	err  error
}

func (f fixedFetcher) Fetch(ctx context.Context, op service.Operation, params service.Params) (string, error) {
	return f.body, f.err
}

func newObservedRelay(f Fetcher) (*Relay, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewRelay(f, service.NewValidator(), Defaults{State: "IN", SessionID: 2143, Year: 2024}, zap.New(core)), logs
}

func get(t *testing.T, h fiber.Handler, route, path string) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get(route, h)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRelayLogsNonOKStatus(t *testing.T) {
	relay, logs := newObservedRelay(fixedFetcher{body: `{"status":"ERROR"}`})

	code, body := get(t, PersonHandler(relay), "/person/:people_id", "/person/5")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, `{"status":"ERROR"}`, body)

	entries := logs.FilterMessage("upstream reported non-OK status").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "getPerson", entries[0].ContextMap()["op"])
}

func TestRelayLogsUpstreamFailure(t *testing.T) {
	relay, logs := newObservedRelay(fixedFetcher{err: service.ErrUpstreamUnreachable})

	code, _ := get(t, SessionsHandler(relay), "/sessions", "/sessions")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, 1, logs.FilterMessage("upstream call failed").Len())
	assert.Zero(t, logs.FilterMessage("upstream response failed validation").Len())
}

func TestRelayLogsDecodeFailure(t *testing.T) {
	relay, logs := newObservedRelay(fixedFetcher{body: `not json`})

	code, _ := get(t, BillHandler(relay), "/get_bill/:bill_id", "/get_bill/1")
	assert.Equal(t, http.StatusInternalServerError, code)

	entries := logs.FilterMessage("upstream response failed validation").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bill", entries[0].ContextMap()["shape"])
}

func TestRelayOKStatusNotLogged(t *testing.T) {
	relay, logs := newObservedRelay(fixedFetcher{body: `{"status":"OK","sessions":[]}`})

	code, _ := get(t, SessionsHandler(relay), "/sessions", "/sessions")
	assert.Equal(t, http.StatusOK, code)
	assert.Zero(t, logs.FilterMessage("upstream reported non-OK status").Len())
}

func TestNewRelayNilLogger(t *testing.T) {
	relay := NewRelay(fixedFetcher{err: errors.New("boom")}, service.NewValidator(), Defaults{State: "IN"}, nil)

	code, _ := get(t, SessionNamesHandler(relay), "/sessions_name", "/sessions_name")
	assert.Equal(t, http.StatusInternalServerError, code)
}
