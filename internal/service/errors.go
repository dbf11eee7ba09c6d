package service

import "errors"

var (
	// ErrUpstreamUnreachable reports that the LegiScan call failed before a
	// usable text body was received (connection, timeout, non-text body).
	ErrUpstreamUnreachable = errors.New("upstream unreachable")

	// ErrDecodeFailed reports that an upstream body did not match the
	// expected response shape.
	ErrDecodeFailed = errors.New("decode failed")

	ErrUnknownOperation = errors.New("unknown operation")
	ErrUnknownShape     = errors.New("unknown shape")
	ErrMissingParam     = errors.New("missing parameter")
)
