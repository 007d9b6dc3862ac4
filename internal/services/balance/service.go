// Package balance is the single mutation point for profile balances. It
// never opens or commits a transaction itself: callers pass the profile
// repository bound to their own unit of work, so a rolled-back transaction
// leaves no trace of the mutation.
package balance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"paybroker/internal/models"
	"paybroker/internal/repositories"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ApplyDelta adds a signed delta to the profile's balance and returns the
// updated profile. It does not enforce non-negativity: the payment path
// pre-checks funds and uses Debit, and deposits are always credits, so the
// policy lives one layer up.
func (s *Service) ApplyDelta(ctx context.Context, profiles repositories.ProfileRepository, profile *models.Profile, delta decimal.Decimal) (*models.Profile, error) {
	if profile == nil {
		return nil, ErrInvalidProfile
	}

	updated, err := profiles.ApplyBalanceDelta(ctx, profile.ID, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to apply balance delta: %w", err)
	}
	return updated, nil
}

// Debit subtracts amount from the profile's balance, refusing to overdraw.
// The sufficiency check and the subtraction are a single conditional update,
// so two concurrent debits can never both pass against a stale balance.
func (s *Service) Debit(ctx context.Context, profiles repositories.ProfileRepository, profile *models.Profile, amount decimal.Decimal) (*models.Profile, error) {
	if profile == nil {
		return nil, ErrInvalidProfile
	}

	ok, err := profiles.DebitIfSufficient(ctx, profile.ID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to debit balance: %w", err)
	}
	if !ok {
		return nil, ErrInsufficientBalance
	}
	return profiles.GetByID(ctx, profile.ID)
}
