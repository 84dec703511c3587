package repository

import "context"

// TransactionManager runs a unit of work against one database transaction.
// fn may run more than once when the database asks for a retry, so it must
// not keep state from an earlier attempt. A non-nil error rolls back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAuthRepository() AuthRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewPasswordResetRepository() PasswordResetRepository
	NewProfileRepository() ProfileRepository
	NewShopRepository() ShopRepository
	NewServiceRepository() ServiceRepository
	NewSparePartRepository() SparePartRepository
	NewOrderRepository() OrderRepository
	NewAppointmentRepository() AppointmentRepository
	NewReviewRepository() ReviewRepository
}
