package service

import (
	"context"
	"errors"
	"net"
	"net/url"
)

// ErrInvalidWardrobeURL is returned when a wardrobe URL fails validation.
// No network call is made in that case.
var ErrInvalidWardrobeURL = errors.New("invalid wardrobe URL: expected a profile link like https://www.vinted.com/member/12345")

// ErrNotEntitled is returned when a generation is requested with no
// remaining quota and no bonus credits.
var ErrNotEntitled = errors.New("no generations left: upgrade your plan or add credits")

// ErrGenerationInProgress is returned when a generation is requested
// while another job for the same session is still running.
var ErrGenerationInProgress = errors.New("a video is already being generated")

// ErrEmptySelection is returned when a generation is requested with no
// selected articles.
var ErrEmptySelection = errors.New("select at least one article to generate a video")

// Error kinds for failed upstream calls
const (
	ErrorKindNetwork = "network"
	ErrorKindTimeout = "timeout"
	ErrorKindService = "service"
)

// UpstreamError is a typed failure from the scrape or render service,
// carrying a message safe to show to the user. Kind distinguishes
// connectivity problems and timeouts from upstream-reported failures.
type UpstreamError struct {
	Op      string // "scrape" or "render"
	Kind    string
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// upstreamFailure classifies a transport-level error into an UpstreamError
// with a user-facing message. Context deadline expiry gets its own kind so
// callers can tell a slow upstream from an unreachable one.
func upstreamFailure(op string, err error) *UpstreamError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &UpstreamError{
			Op:      op,
			Kind:    ErrorKindTimeout,
			Message: "the request timed out, please try again",
			Err:     err,
		}
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return &UpstreamError{
			Op:      op,
			Kind:    ErrorKindNetwork,
			Message: "could not reach the service, check your connection and try again",
			Err:     err,
		}
	}

	return &UpstreamError{
		Op:      op,
		Kind:    ErrorKindService,
		Message: "something went wrong, please try again later",
		Err:     err,
	}
}

// upstreamRejection builds an UpstreamError for a failure the upstream
// service itself reported (non-success response).
func upstreamRejection(op string, message string) *UpstreamError {
	if message == "" {
		message = "something went wrong, please try again later"
	}
	return &UpstreamError{Op: op, Kind: ErrorKindService, Message: message}
}
