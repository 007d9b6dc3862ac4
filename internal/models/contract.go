package models

import "time"

// Contract lifecycle statuses
const (
	ContractStatusNew        = "new"
	ContractStatusInProgress = "in_progress"
	ContractStatusTerminated = "terminated"
)

// Contract links exactly one client and one contractor. Operations on a
// contract or its jobs are permitted only to one of the two linked parties.
type Contract struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Terms        string    `json:"terms"`
	Status       string    `gorm:"not null;default:'new';index" json:"status"`
	ClientID     uint      `gorm:"not null;index" json:"client_id"`
	Client       *Profile  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	ContractorID uint      `gorm:"not null;index" json:"contractor_id"`
	Contractor   *Profile  `gorm:"foreignKey:ContractorID" json:"contractor,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsParty reports whether the given profile is one of the two linked parties.
func (c *Contract) IsParty(profileID uint) bool {
	return c.ClientID == profileID || c.ContractorID == profileID
}
