package database

import (
	"context"
	"fmt"

	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db       *DB
	pollRepo contract.PollRepo
	markRepo contract.MarkRepo
}

// NewInstance creates the journal data manager with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.pollRepo = newPollRepository(db.conn)
	instance.markRepo = newMarkRepository(db.conn)
	return instance
}

// repoInstancesWithConn creates repository instances bound to a transaction
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		pollRepo: newPollRepository(db),
		markRepo: newMarkRepository(db),
	}
}

func (i *instance) Poll() contract.PollRepo {
	return i.pollRepo
}

func (i *instance) Mark() contract.MarkRepo {
	return i.markRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
