package errorvalues

import "errors"

var (
	ErrDrinkNotFound  = errors.New("drink doesn't exist in catalog")
	ErrScreenNotFound = errors.New("screen doesn't exist")
	ErrInvalidDate    = errors.New("invalid calendar date")
)
