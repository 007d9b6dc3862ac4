package contract

import "errors"

// ErrContractNotFound covers both a nonexistent contract and one the
// principal is not a party to.
var ErrContractNotFound = errors.New("contract not found")
