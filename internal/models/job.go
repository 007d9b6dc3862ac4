package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job is a unit of work under a contract. Price is fixed at creation and
// never touched by payment logic. Paid transitions false -> true exactly
// once; PaymentDate is set at the moment of that transition.
type Job struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	ContractID  uint            `gorm:"not null;index" json:"contract_id"`
	Contract    *Contract       `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
	Description string          `gorm:"not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;check:price > 0" json:"price"`
	Paid        bool            `gorm:"not null;default:false;index" json:"paid"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
