package utils

import "errors"

var (
	ErrEmptyCity          = errors.New("city name is required")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrNoActiveSearch     = errors.New("no active search")
	ErrSearchSuperseded   = errors.New("search superseded by a newer request")
	ErrSearchUnavailable  = errors.New("search service unavailable")
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrStoreError         = errors.New("store error")
)

// ServiceError carries the failure message reported by the discovery service
// so the view can surface it verbatim.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(message string) error {
	if message == "" {
		message = "Search failed. Please try again later."
	}
	return &ServiceError{Message: message}
}
