package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"paybroker/internal/models"
)

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Contract").
		First(&job, id).Error
	if err != nil {
		return nil, notFound(err, ErrJobNotFound)
	}
	return &job, nil
}

func (r *jobRepository) FindForClient(ctx context.Context, jobID, clientID uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Joins("JOIN contracts ON contracts.id = jobs.contract_id").
		Where("jobs.id = ? AND contracts.client_id = ? AND contracts.status = ?",
			jobID, clientID, models.ContractStatusInProgress).
		Preload("Contract").
		Preload("Contract.Contractor").
		First(&job).Error
	if err != nil {
		return nil, notFound(err, ErrJobNotFound)
	}
	return &job, nil
}

func (r *jobRepository) ListUnpaidForParty(ctx context.Context, partyID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Joins("JOIN contracts ON contracts.id = jobs.contract_id").
		Where("jobs.paid = ? AND contracts.status = ? AND (contracts.client_id = ? OR contracts.contractor_id = ?)",
			false, models.ContractStatusInProgress, partyID, partyID).
		Order("jobs.id").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) SumOutstandingForClient(ctx context.Context, clientID uint) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Select("COALESCE(SUM(jobs.price), 0) AS total").
		Joins("JOIN contracts ON contracts.id = jobs.contract_id").
		Where("jobs.paid = ? AND contracts.client_id = ?", false, clientID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum outstanding jobs: %w", err)
	}
	return row.Total, nil
}

func (r *jobRepository) MarkPaid(ctx context.Context, jobID uint, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ? AND paid = ?", jobID, false).
		Updates(map[string]interface{}{"paid": true, "payment_date": at})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark job paid: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
