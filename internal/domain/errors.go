package domain

import "errors"

var (
	ErrAuthRejected      = errors.New("authentication rejected")
	ErrNetworkFailure    = errors.New("marketplace unreachable")
	ErrValidationFailure = errors.New("validation failed")
	ErrProductNotFound   = errors.New("product not found")
	ErrEmptyCart         = errors.New("cart is empty")
)
