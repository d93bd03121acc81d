package infra

import (
	"context"
	"fmt"
	"reflect"

	accountrepo "github.com/amirasaad/ledger/infra/repository/account"
	personrepo "github.com/amirasaad/ledger/infra/repository/person"
	transactionrepo "github.com/amirasaad/ledger/infra/repository/transaction"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/repository/person"
	"github.com/amirasaad/ledger/pkg/repository/transaction"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Outside Do, repositories run on the plain connection.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*transaction.Repository)(nil)).Elem(): func(db *gorm.DB) any { return transactionrepo.New(db) },
			reflect.TypeOf((*account.Repository)(nil)).Elem():     func(db *gorm.DB) any { return accountrepo.New(db) },
			reflect.TypeOf((*person.Repository)(nil)).Elem():      func(db *gorm.DB) any { return personrepo.New(db) },
		},
	}
}

// Do runs fn inside one database transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
	})
}

// GetRepository returns the repository registered for the interface that
// repoType points to, bound to the transaction session when there is one.
func (u *UoW) GetRepository(repoType any) (any, error) {
	t := reflect.TypeOf(repoType)
	if t == nil || t.Kind() != reflect.Pointer {
		return nil, fmt.Errorf("unsupported repository type: %v", t)
	}
	constructor, ok := u.repoRegistry[t.Elem()]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", t.Elem())
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
