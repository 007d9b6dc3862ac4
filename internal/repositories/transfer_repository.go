package repositories

import (
	"context"

	"paybroker/internal/models"
)

// TransferRepository persists the ledger rows backing every balance
// mutation.
type TransferRepository interface {
	Create(ctx context.Context, transfer *models.Transfer) error
	ListForProfile(ctx context.Context, profileID uint) ([]models.Transfer, error)
}
