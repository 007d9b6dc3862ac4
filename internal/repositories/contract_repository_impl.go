package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"paybroker/internal/models"
)

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) GetForParty(ctx context.Context, id, partyID uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.WithContext(ctx).
		Where("id = ? AND (client_id = ? OR contractor_id = ?)", id, partyID, partyID).
		First(&contract).Error
	if err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}
	return &contract, nil
}

func (r *contractRepository) ListForParty(ctx context.Context, partyID uint) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.WithContext(ctx).
		Where("status <> ? AND (client_id = ? OR contractor_id = ?)",
			models.ContractStatusTerminated, partyID, partyID).
		Order("id").
		Find(&contracts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return contracts, nil
}
