package api

import "fmt"

// HTTPError is returned when the backend answers with a non-2xx status. The
// body is not read: callers get the status and nothing else.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("propalyst backend returned status %d", e.Status)
}

// DecodeError is returned when a 2xx response body is not valid JSON for the
// expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode propalyst response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
