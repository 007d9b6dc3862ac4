package repositories

import (
	"context"

	"paybroker/internal/models"
)

// ContractRepository provides party-scoped access to contracts. Every query
// filters by the acting party, so a contract the party is not linked to is
// indistinguishable from a nonexistent one.
type ContractRepository interface {
	GetForParty(ctx context.Context, id, partyID uint) (*models.Contract, error)
	ListForParty(ctx context.Context, partyID uint) ([]models.Contract, error)
}
