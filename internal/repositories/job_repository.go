package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"paybroker/internal/models"
)

// JobRepository provides typed access to jobs. FindForClient is the
// authorization-via-query lookup used by the payment path: a job whose
// contract does not name clientID as the client, or whose contract is not
// in progress, is reported as not found.
type JobRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	FindForClient(ctx context.Context, jobID, clientID uint) (*models.Job, error)
	ListUnpaidForParty(ctx context.Context, partyID uint) ([]models.Job, error)

	// SumOutstandingForClient returns the total price of unpaid jobs across
	// all of the client's contracts.
	SumOutstandingForClient(ctx context.Context, clientID uint) (decimal.Decimal, error)

	// MarkPaid flips paid false -> true and stamps the payment date,
	// conditionally on the job still being unpaid. Returns false when
	// another transaction won the flip.
	MarkPaid(ctx context.Context, jobID uint, at time.Time) (bool, error)
}
