package biddingerrors

import (
	"errors"
	"net/http"
)

// Client-observable failure classes
var (
	ErrAuth              = errors.New("missing or invalid credential")
	ErrValidation        = errors.New("validation failed")
	ErrNetwork           = errors.New("request failed")
	ErrInvalidTransition = errors.New("invalid bid status transition")
	ErrChannel           = errors.New("real-time channel fault")
)

// Repository-level errors
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrBidNotFound      = errors.New("bid not found")
	ErrNoBids           = errors.New("no bids found for project")
	ErrFreelancerNoBids = errors.New("freelancer has not placed any bids")
	ErrDuplicateBid     = errors.New("freelancer already bid on this project")
	ErrRevisionConflict = errors.New("bid was modified concurrently")
	ErrDuplicateProject = errors.New("project already exists")
)

// business logic errors
var (
	ErrProjectNotOpen = errors.New("project is not open")
	ErrNotPermitted   = errors.New("action not permitted for this user")
)

const genericMessage = "something went wrong, please try again"

// RequestError is a failed call to the bid service. Message is the
// human-readable text taken from the error body, or a generic fallback.
type RequestError struct {
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return genericMessage
	}
	return e.Message
}

// Unwrap exposes ErrNetwork, the class implied by the HTTP status, and the
// transport error when there was one.
func (e *RequestError) Unwrap() []error {
	errs := []error{ErrNetwork}
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		errs = append(errs, ErrValidation)
	case http.StatusUnauthorized:
		errs = append(errs, ErrAuth)
	case http.StatusForbidden:
		errs = append(errs, ErrNotPermitted)
	case http.StatusConflict:
		errs = append(errs, ErrInvalidTransition)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// UserMessage returns the text to show in a transient notification for err
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr):
		return reqErr.Error()
	case errors.Is(err, ErrAuth):
		return "please sign in again"
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidTransition):
		return err.Error()
	default:
		return genericMessage
	}
}
