package repository

import "context"

// TransactionManager runs a unit of work against a single database transaction.
// Order placement, signup and profile edits use it to keep stock, cart and
// user rows consistent.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the enclosing transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAddressRepository() AddressRepository
	NewProductRepository() ProductRepository
	NewOrderRepository() OrderRepository
	NewCartRepository() CartRepository
}
