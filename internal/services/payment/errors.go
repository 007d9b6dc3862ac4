package payment

import "errors"

var (
	ErrMissingPrincipal = errors.New("missing acting principal")

	// ErrJobNotFound covers both a nonexistent job and a job the principal
	// is not authorized to pay for. The two cases are intentionally
	// indistinguishable.
	ErrJobNotFound = errors.New("no payable job for this principal")

	ErrJobAlreadyPaid    = errors.New("job already paid")
	ErrInsufficientFunds = errors.New("insufficient funds for this job")
)
