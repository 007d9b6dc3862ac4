package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// DataStore bundles the entity repositories with a unit-of-work primitive.
// WithinTransaction runs fn against repositories bound to a single database
// transaction: every write inside fn commits or rolls back as one unit.
type DataStore interface {
	Profiles() ProfileRepository
	Contracts() ContractRepository
	Jobs() JobRepository
	Transfers() TransferRepository
	WithinTransaction(ctx context.Context, fn func(tx DataStore) error) error
}

type store struct {
	db        *gorm.DB
	profiles  ProfileRepository
	contracts ContractRepository
	jobs      JobRepository
	transfers TransferRepository
}

// NewStore creates a DataStore over the given gorm handle.
func NewStore(db *gorm.DB) DataStore {
	if db == nil {
		panic("db is required")
	}
	return &store{
		db:        db,
		profiles:  NewProfileRepository(db),
		contracts: NewContractRepository(db),
		jobs:      NewJobRepository(db),
		transfers: NewTransferRepository(db),
	}
}

func (s *store) Profiles() ProfileRepository   { return s.profiles }
func (s *store) Contracts() ContractRepository { return s.contracts }
func (s *store) Jobs() JobRepository           { return s.jobs }
func (s *store) Transfers() TransferRepository { return s.transfers }

func (s *store) WithinTransaction(ctx context.Context, fn func(tx DataStore) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
	if err == nil {
		return nil
	}
	if isTransient(err) {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return err
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
