package pullqueue

import "errors"

var (
	ErrStationRequired = errors.New("pullqueue: station id is required")
	ErrNoEligibleOrder = errors.New("pullqueue: no eligible order")
)
