package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/jjenkins/legiscan-relay/internal/config"
)

const defaultTimeout = 30 * time.Second

// Operation is a LegiScan API operation name, sent as the op query parameter
type Operation string

const (
	OpGetBill          Operation = "getBill"
	OpGetMasterListRaw Operation = "getMasterListRaw"
	OpGetMasterList    Operation = "getMasterList"
	OpGetSessionList   Operation = "getSessionList"
	OpGetPerson        Operation = "getPerson"
)

// Params carries the per-operation query parameters. Zero values are omitted.
type Params struct {
	ID    uint32
	State string
	Year  int
}

// operationSpec lists which params an operation cannot do without
type operationSpec struct {
	needsID    bool
	needsState bool
}

var operations = map[Operation]operationSpec{
	OpGetBill:          {needsID: true},
	OpGetMasterListRaw: {needsID: true},
	OpGetMasterList:    {needsState: true},
	OpGetSessionList:   {needsState: true},
	OpGetPerson:        {needsID: true},
}

// LegiScanClient handles communication with the LegiScan API
type LegiScanClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewLegiScanClient creates a new LegiScan API client from loaded configuration
func NewLegiScanClient(cfg config.LegiScanConfig) *LegiScanClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &LegiScanClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		timeout: timeout,
	}
}

// RequestURL builds the upstream URL for an operation
func (c *LegiScanClient) RequestURL(op Operation, params Params) (string, error) {
	spec, ok := operations[op]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	if spec.needsID && params.ID == 0 {
		return "", fmt.Errorf("%w: %s requires id", ErrMissingParam, op)
	}
	if spec.needsState && params.State == "" {
		return "", fmt.Errorf("%w: %s requires state", ErrMissingParam, op)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("op", string(op))
	if params.ID != 0 {
		q.Set("id", strconv.FormatUint(uint64(params.ID), 10))
	}
	if params.State != "" {
		q.Set("state", params.State)
	}
	if params.Year != 0 {
		q.Set("year", strconv.Itoa(params.Year))
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Fetch performs exactly one GET for the operation and returns the body verbatim.
// The HTTP status code is not inspected; LegiScan reports failures in the body.
func (c *LegiScanClient) Fetch(ctx context.Context, op Operation, params Params) (string, error) {
	reqURL, err := c.RequestURL(op, params)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUpstreamUnreachable, op, stripURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s: reading body: %w", ErrUpstreamUnreachable, op, stripURL(err))
	}

	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: %s: response body is not valid UTF-8 text", ErrUpstreamUnreachable, op)
	}

	return string(body), nil
}

// stripURL drops the request URL from transport errors so the API key never
// ends up in logs or response bodies.
func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
