package completion

import "errors"

var (
	ErrOperatorRequired = errors.New("completion: operator id is required")
	ErrOrderRequired    = errors.New("completion: order id is required")
	ErrStationRequired  = errors.New("completion: station id is required")
	ErrUnknownReference = errors.New("completion: unknown order or station")
	ErrAlreadyClosed    = errors.New("completion: station already closed for order")
)
