package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ProductRepo() ProductRepository
}

// TransactionManager runs a unit of work inside a single database
// transaction: committed when fn returns nil, rolled back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
