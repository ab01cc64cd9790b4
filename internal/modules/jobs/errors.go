package jobs

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidStatus    = errors.New("invalid job status")
	ErrInvalidPriority  = errors.New("invalid job priority")
)
