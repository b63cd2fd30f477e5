package oracle

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the oracle endpoint could not be reached or
	// refused the call (network, auth, quota).
	ErrUnavailable = errors.New("oracle unavailable")

	// ErrTimeout indicates the oracle call exceeded the configured timeout.
	ErrTimeout = errors.New("oracle request timed out")

	// ErrMalformedResponse indicates the oracle reply contained no
	// parseable JSON object.
	ErrMalformedResponse = errors.New("malformed oracle response")

	// ErrIncompleteResponse indicates the oracle reply parsed but is
	// missing required fields.
	ErrIncompleteResponse = errors.New("incomplete oracle response")
)

// ResponseError wraps a response-shaped failure and preserves the raw
// oracle text for diagnostics.
type ResponseError struct {
	Raw string
	Err error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%v (raw response preserved, %d bytes)", e.Err, len(e.Raw))
}

func (e *ResponseError) Unwrap() error { return e.Err }

// RawResponse returns the preserved oracle text from err, if any.
func RawResponse(err error) (string, bool) {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Raw, true
	}
	return "", false
}
