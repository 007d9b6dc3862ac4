package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile roles
const (
	RoleClient     = "client"
	RoleContractor = "contractor"
)

// Profile is a party on the platform: a client who pays for jobs or a
// contractor who gets paid for them. Balance is mutated only through the
// balance service; the check constraint backs the no-overdraft invariant
// at the storage layer.
type Profile struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	FirstName  string          `gorm:"not null" json:"first_name"`
	LastName   string          `gorm:"not null" json:"last_name"`
	Profession string          `json:"profession"`
	Role       string          `gorm:"not null;index" json:"role"`
	Balance    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0;check:balance >= 0" json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (p *Profile) IsClient() bool {
	return p.Role == RoleClient
}

func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
