// Package contract serves the party-scoped read operations on contracts
// and their jobs.
package contract

import (
	"context"
	"errors"

	"paybroker/internal/models"
	"paybroker/internal/repositories"
)

type Service interface {
	// GetContract returns the contract only if the principal is one of its
	// two linked parties.
	GetContract(ctx context.Context, id uint, principal *models.Profile) (*models.Contract, error)

	// ListContracts returns the principal's non-terminated contracts.
	ListContracts(ctx context.Context, principal *models.Profile) ([]models.Contract, error)

	// ListUnpaidJobs returns unpaid jobs under the principal's in-progress
	// contracts.
	ListUnpaidJobs(ctx context.Context, principal *models.Profile) ([]models.Job, error)
}

type service struct {
	store repositories.DataStore
}

func NewService(store repositories.DataStore) Service {
	if store == nil {
		panic("store is required")
	}
	return &service{store: store}
}

func (s *service) GetContract(ctx context.Context, id uint, principal *models.Profile) (*models.Contract, error) {
	if principal == nil {
		return nil, ErrContractNotFound
	}
	c, err := s.store.Contracts().GetForParty(ctx, id, principal.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrContractNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *service) ListContracts(ctx context.Context, principal *models.Profile) ([]models.Contract, error) {
	if principal == nil {
		return nil, ErrContractNotFound
	}
	return s.store.Contracts().ListForParty(ctx, principal.ID)
}

func (s *service) ListUnpaidJobs(ctx context.Context, principal *models.Profile) ([]models.Job, error) {
	if principal == nil {
		return nil, ErrContractNotFound
	}
	return s.store.Jobs().ListUnpaidForParty(ctx, principal.ID)
}
