package deposit

import "errors"

var (
	ErrInvalidAmount        = errors.New("deposit amount must be positive")
	ErrClientNotFound       = errors.New("client not found")
	ErrDepositLimitExceeded = errors.New("deposit exceeds 25% of outstanding obligations")
)
