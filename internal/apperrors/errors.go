package apperrors

import "errors"

var (
	ErrStartInProgress     = errors.New("start sequence already in progress")
	ErrServerAlreadyOnline = errors.New("server is already online")
	ErrUpstreamStatus      = errors.New("status endpoint returned non-success status")
	ErrMalformedStatus     = errors.New("malformed status payload")
	ErrStartRejected       = errors.New("start endpoint returned non-success status")
)
