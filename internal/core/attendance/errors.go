package attendance

import "errors"

var (
	ErrOperatorRequired = errors.New("attendance: operator id is required")
	ErrEventNotFound    = errors.New("attendance: event not found")
)
