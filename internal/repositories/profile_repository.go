package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"paybroker/internal/models"
)

// ProfileRepository provides typed access to profiles and their balances.
// The two balance mutations are expressed as atomic SQL updates so the
// read-modify-write never happens in application code.
type ProfileRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetClientByID(ctx context.Context, id uint) (*models.Profile, error)

	// GetClientForUpdate locks the client row for the remainder of the
	// enclosing transaction. Only meaningful on a transaction-bound
	// repository.
	GetClientForUpdate(ctx context.Context, id uint) (*models.Profile, error)

	// ApplyBalanceDelta atomically adds delta to the profile's balance and
	// returns the updated profile.
	ApplyBalanceDelta(ctx context.Context, id uint, delta decimal.Decimal) (*models.Profile, error)

	// DebitIfSufficient atomically subtracts amount from the balance only
	// if the balance covers it. Returns false when the guard failed.
	DebitIfSufficient(ctx context.Context, id uint, amount decimal.Decimal) (bool, error)
}
