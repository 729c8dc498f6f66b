package operator

import "errors"

var (
	ErrTagRequired        = errors.New("operator: tag id is required")
	ErrUnknownTag         = errors.New("operator: unknown tag")
	ErrOperatorIneligible = errors.New("operator: operator is not eligible")
)
