// Package postgres implements the repositories on GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"autohub/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	txMaxAttempts = 3
	txRetryDelay  = 20 * time.Millisecond
)

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewAuthRepository() repository.AuthRepository {
	return NewAuthRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPasswordResetRepository() repository.PasswordResetRepository {
	return NewPasswordResetRepository(f.tx)
}

func (f *gormRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) NewShopRepository() repository.ShopRepository {
	return NewShopRepository(f.tx)
}

func (f *gormRepositoryFactory) NewServiceRepository() repository.ServiceRepository {
	return NewServiceRepository(f.tx)
}

func (f *gormRepositoryFactory) NewSparePartRepository() repository.SparePartRepository {
	return NewSparePartRepository(f.tx)
}

func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) NewAppointmentRepository() repository.AppointmentRepository {
	return NewAppointmentRepository(f.tx)
}

func (f *gormRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager pins every transaction to the primary.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise, panics
// included. A transaction aborted by a serialization failure or deadlock is
// replayed, so fn must not have side effects outside the transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var err error
	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		err = tm.db.WithContext(ctx).Clauses(dbresolver.Write).Transaction(func(tx *gorm.DB) error {
			return fn(&gormRepositoryFactory{tx: tx})
		})
		if err == nil || !isRetryableTxError(err) || attempt == txMaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(txRetryDelay * time.Duration(attempt)):
		}
	}

	return err
}
