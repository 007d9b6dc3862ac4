package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProfessionEarnings is one row of the best-profession report.
type ProfessionEarnings struct {
	Profession string          `json:"profession"`
	Total      decimal.Decimal `json:"total"`
}

// ClientSpend is one row of the best-clients report.
type ClientSpend struct {
	ID       uint            `json:"id"`
	FullName string          `json:"full_name"`
	Paid     decimal.Decimal `json:"paid"`
}

// ReportingRepository serves the read-only aggregation queries. These never
// run inside the payment or deposit transactions.
type ReportingRepository interface {
	BestProfession(ctx context.Context, start, end time.Time) (*ProfessionEarnings, error)
	BestClients(ctx context.Context, start, end time.Time, limit int) ([]ClientSpend, error)
}

type reportingRepository struct {
	db *gorm.DB
}

func NewReportingRepository(db *gorm.DB) ReportingRepository {
	return &reportingRepository{db: db}
}

func (r *reportingRepository) BestProfession(ctx context.Context, start, end time.Time) (*ProfessionEarnings, error) {
	var rows []ProfessionEarnings
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.profession,
			SUM(j.price) AS total
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.contractor_id
		WHERE j.paid = TRUE
			AND j.payment_date >= ?
			AND j.payment_date <= ?
		GROUP BY p.profession
		ORDER BY total DESC
		LIMIT 1
	`, start, end).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute best profession: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *reportingRepository) BestClients(ctx context.Context, start, end time.Time, limit int) ([]ClientSpend, error) {
	var rows []ClientSpend
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.first_name || ' ' || p.last_name AS full_name,
			SUM(j.price) AS paid
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.client_id
		WHERE j.paid = TRUE
			AND j.payment_date >= ?
			AND j.payment_date <= ?
		GROUP BY p.id, p.first_name, p.last_name
		ORDER BY paid DESC
		LIMIT ?
	`, start, end, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute best clients: %w", err)
	}
	return rows, nil
}
