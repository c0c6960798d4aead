package generator

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels for classification via errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUpstream     = errors.New("upstream error")
	ErrTimeout      = errors.New("timeout")
)

type Error struct {
	Sentinel error

	Message string

	// JobID correlates the failure with the provider job, when one exists
	JobID string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Sentinel
}

func invalidInput(message string) error {
	return &Error{
		Sentinel: ErrInvalidInput,
		Message:  message,
	}
}

func upstream(jobID, detail string) error {
	if detail == "" {
		detail = "avatar job failed"
	}

	return &Error{
		Sentinel: ErrUpstream,
		Message:  detail,
		JobID:    jobID,
	}
}

func timeout(jobID string) error {
	return &Error{
		Sentinel: ErrTimeout,
		Message:  fmt.Sprintf("avatar job %s did not finish in time", jobID),
		JobID:    jobID,
	}
}

// HTTPStatus maps a generation error to the response status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest

	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway

	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	}

	return http.StatusInternalServerError
}
