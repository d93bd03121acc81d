// Package model holds the GORM row types. Column types are portable across
// postgres, mysql and sqlite; postgres schemas come from the SQL migrations.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Person represents a person record in the database.
type Person struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Document  string    `gorm:"size:32;uniqueIndex;not null"`
	Password  string    `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Person) TableName() string { return "people" }

// Account represents an account record in the database.
type Account struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	PersonID  uuid.UUID `gorm:"type:char(36);index;not null"`
	Branch    string    `gorm:"size:16;not null;uniqueIndex:idx_accounts_branch_account"`
	Number    string    `gorm:"column:account;size:32;not null;uniqueIndex:idx_accounts_branch_account"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Account) TableName() string { return "accounts" }

// Transaction represents one persisted ledger entry.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:char(36);primaryKey"`
	AccountID   uuid.UUID       `gorm:"type:char(36);index:idx_transactions_account_created;not null"`
	Value       decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Description string          `gorm:"size:255;not null"`
	CreatedAt   time.Time       `gorm:"index:idx_transactions_account_created"`
	UpdatedAt   time.Time
	ReversedAt  *time.Time
}

func (Transaction) TableName() string { return "transactions" }

// All lists every model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{&Person{}, &Account{}, &Transaction{}}
}
