package repository

import (
	"context"
	"fmt"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// GetRepository lives on UnitOfWork so every repository used inside Do shares
// the same DB session.
//
// Example usage:
//
//	repoAny, err := uow.GetRepository((*transaction.Repository)(nil))
//	repo := repoAny.(transaction.Repository)
type UnitOfWork interface {
	// Do executes fn within a transaction boundary.
	// If fn returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current session. repoType is a typed nil pointer to the
	// repository interface.
	GetRepository(repoType any) (any, error)
}

// Resolve fetches the repository T from uow and checks its type.
func Resolve[T any](uow UnitOfWork) (T, error) {
	var zero T
	repoAny, err := uow.GetRepository((*T)(nil))
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected repository type %T", repoAny)
	}
	return repo, nil
}
