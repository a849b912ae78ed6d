package client

import (
	"fmt"
)

// FetchError describes a failed backend call. Its message is the text shown
// to the user.
type FetchError struct {
	// StatusCode is zero for transport failures.
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("An error occurred: %s", e.Message)
	}
	return fmt.Sprintf("Backend returned code %d: %s", e.StatusCode, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
