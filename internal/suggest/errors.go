package suggest

import (
	"errors"
	"fmt"
)

var (
	ErrTransport = errors.New("suggestion service unreachable")
	ErrStatus    = errors.New("suggestion service returned an error status")
	ErrDecode    = errors.New("suggestion response could not be decoded")
	ErrStorage   = errors.New("suggestion state storage failed")
	ErrNoAPIKey  = errors.New("suggestion service api key is not configured")
)

// StatusError carries a non-2xx response. It matches ErrStatus with errors.Is.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("suggestion api error: status=%d", e.Code)
	}
	return fmt.Sprintf("suggestion api error: status=%d body=%s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool { return target == ErrStatus }
