package worklog

import "errors"

var (
	ErrOperatorRequired = errors.New("worklog: operator id is required")
	ErrOrderRequired    = errors.New("worklog: order id is required")
	ErrStationRequired  = errors.New("worklog: station id is required")
	ErrUnknownReference = errors.New("worklog: unknown order or station")
	ErrStateConflict    = errors.New("worklog: concurrent state change")
)
