package balance

import "errors"

var (
	ErrInvalidProfile      = errors.New("invalid profile")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
