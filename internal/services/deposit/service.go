// Package deposit authorizes and executes deposits into client balances.
// The deposit ceiling is a fraction of the client's outstanding unpaid-job
// total, measured inside the deposit's own transaction with the client row
// locked, so concurrent deposits each decide against a consistent snapshot.
package deposit

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"paybroker/internal/models"
	"paybroker/internal/repositories"
	"paybroker/internal/repositories/cache"
	"paybroker/internal/services/balance"
)

// capRatio is the fraction of outstanding obligations a single deposit may
// reach. The comparison is inclusive: a deposit of exactly 25% is allowed.
var capRatio = decimal.New(25, -2)

// Service handles deposits and the transfer history of a profile.
type Service interface {
	DepositToClient(ctx context.Context, targetID uint, amount decimal.Decimal, principal *models.Profile) (*models.Profile, error)
	History(ctx context.Context, principal *models.Profile) ([]models.Transfer, error)
}

type service struct {
	store   repositories.DataStore
	balance *balance.Service
	cache   *cache.Service
	log     zerolog.Logger
}

func NewService(store repositories.DataStore, balanceSvc *balance.Service, cacheSvc *cache.Service, log zerolog.Logger) Service {
	if store == nil {
		panic("store is required")
	}
	if balanceSvc == nil {
		panic("balance service is required")
	}
	return &service{
		store:   store,
		balance: balanceSvc,
		cache:   cacheSvc,
		log:     log,
	}
}

// DepositToClient credits amount to the target client's balance if the
// amount does not exceed 25% of the client's unpaid-job total. A client
// with no outstanding jobs has a ceiling of zero, so every positive deposit
// is rejected; that is the intended policy, not a degenerate case. The
// principal only needs to be authenticated; deposits are not restricted to
// the target's own account.
func (s *service) DepositToClient(ctx context.Context, targetID uint, amount decimal.Decimal, principal *models.Profile) (*models.Profile, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var updated *models.Profile
	err := s.store.WithinTransaction(ctx, func(tx repositories.DataStore) error {
		client, err := tx.Profiles().GetClientForUpdate(ctx, targetID)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		outstanding, err := tx.Jobs().SumOutstandingForClient(ctx, targetID)
		if err != nil {
			return err
		}
		if amount.GreaterThan(outstanding.Mul(capRatio)) {
			return ErrDepositLimitExceeded
		}

		updated, err = s.balance.ApplyDelta(ctx, tx.Profiles(), client, amount)
		if err != nil {
			return err
		}

		return tx.Transfers().Create(ctx, &models.Transfer{
			Reference:  uuid.NewString(),
			Kind:       models.TransferKindDeposit,
			ReceiverID: client.ID,
			Amount:     amount,
		})
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateProfiles(ctx, targetID); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate profile cache")
	}

	s.log.Info().
		Uint("client_id", targetID).
		Str("amount", amount.String()).
		Msg("deposit accepted")

	return updated, nil
}

// History lists the principal's transfers, most recent first.
func (s *service) History(ctx context.Context, principal *models.Profile) ([]models.Transfer, error) {
	if principal == nil {
		return nil, ErrClientNotFound
	}
	return s.store.Transfers().ListForProfile(ctx, principal.ID)
}
