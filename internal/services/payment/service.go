// Package payment orchestrates the pay-for-job state machine: visibility
// and authorization via a single client-scoped query, a guarded paid flip,
// and a two-leg balance transfer, all inside one unit of work.
package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"paybroker/internal/models"
	"paybroker/internal/repositories"
	"paybroker/internal/repositories/cache"
	"paybroker/internal/services/balance"
)

// Service executes payments from a client to a contractor.
type Service interface {
	PayForJob(ctx context.Context, jobID uint, principal *models.Profile) (*models.Job, error)
}

type service struct {
	store   repositories.DataStore
	balance *balance.Service
	cache   *cache.Service
	log     zerolog.Logger
	now     func() time.Time
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
		now:     time.Now,
	}
}

// PayForJob moves the job's price from the acting client to the contract's
// contractor and marks the job paid, as one atomic unit. The job is visible
// only if the principal is the client of an in-progress contract owning it;
// anything else reports ErrJobNotFound. Concurrent attempts serialize on the
// conditional paid flip, so at most one transfer ever happens per job.
func (s *service) PayForJob(ctx context.Context, jobID uint, principal *models.Profile) (*models.Job, error) {
	if principal == nil {
		return nil, ErrMissingPrincipal
	}

	job, err := s.store.Jobs().FindForClient(ctx, jobID, principal.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if job.Paid {
		return nil, ErrJobAlreadyPaid
	}
	if principal.Balance.LessThan(job.Price) {
		return nil, ErrInsufficientFunds
	}

	contractor := job.Contract.Contractor
	if contractor == nil {
		contractor = &models.Profile{ID: job.Contract.ContractorID}
	}

	err = s.store.WithinTransaction(ctx, func(tx repositories.DataStore) error {
		flipped, err := tx.Jobs().MarkPaid(ctx, job.ID, s.now())
		if err != nil {
			return err
		}
		if !flipped {
			return ErrJobAlreadyPaid
		}

		if _, err := s.balance.Debit(ctx, tx.Profiles(), principal, job.Price); err != nil {
			// The precheck passed against a balance that another payment
			// has since drained.
			if errors.Is(err, balance.ErrInsufficientBalance) {
				return ErrInsufficientFunds
			}
			return err
		}

		if _, err := s.balance.ApplyDelta(ctx, tx.Profiles(), contractor, job.Price); err != nil {
			return err
		}

		senderID := principal.ID
		return tx.Transfers().Create(ctx, &models.Transfer{
			Reference:  uuid.NewString(),
			Kind:       models.TransferKindPayment,
			SenderID:   &senderID,
			ReceiverID: contractor.ID,
			JobID:      &job.ID,
			Amount:     job.Price,
		})
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateProfiles(ctx, principal.ID, contractor.ID); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate profile cache")
	}

	paid, err := s.store.Jobs().GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint("job_id", paid.ID).
		Uint("client_id", principal.ID).
		Uint("contractor_id", contractor.ID).
		Str("amount", paid.Price.String()).
		Msg("job paid")

	return paid, nil
}
