// Package reporting serves the read-only admin aggregations over paid jobs.
package reporting

import (
	"context"
	"errors"
	"time"

	"paybroker/internal/repositories"
)

// DefaultClientLimit is the number of rows the best-clients report returns
// when no limit is requested.
const DefaultClientLimit = 2

var ErrInvalidRange = errors.New("invalid reporting range")

type Service interface {
	// BestProfession returns the profession that earned the most over paid
	// jobs in the range, or nil if nothing was paid.
	BestProfession(ctx context.Context, start, end time.Time) (*repositories.ProfessionEarnings, error)

	// BestClients returns the top paying clients in the range.
	BestClients(ctx context.Context, start, end time.Time, limit int) ([]repositories.ClientSpend, error)
}

type service struct {
	repo repositories.ReportingRepository
}

func NewService(repo repositories.ReportingRepository) Service {
	if repo == nil {
		panic("reporting repository is required")
	}
	return &service{repo: repo}
}

func (s *service) BestProfession(ctx context.Context, start, end time.Time) (*repositories.ProfessionEarnings, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	return s.repo.BestProfession(ctx, start, end)
}

func (s *service) BestClients(ctx context.Context, start, end time.Time, limit int) ([]repositories.ClientSpend, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultClientLimit
	}
	return s.repo.BestClients(ctx, start, end, limit)
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return ErrInvalidRange
	}
	return nil
}
