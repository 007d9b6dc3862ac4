package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer kinds
const (
	TransferKindPayment = "payment"
	TransferKindDeposit = "deposit"
)

// Transfer is the ledger record written in the same transaction as every
// balance mutation. A profile's balance must always equal the net of its
// transfers: credits received minus debits sent.
type Transfer struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	Reference  string          `gorm:"uniqueIndex;not null" json:"reference"`
	Kind       string          `gorm:"not null;index" json:"kind"`
	SenderID   *uint           `gorm:"index" json:"sender_id,omitempty"`
	ReceiverID uint            `gorm:"not null;index" json:"receiver_id"`
	JobID      *uint           `gorm:"index" json:"job_id,omitempty"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}
