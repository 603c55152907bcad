package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID         uuid.UUID       `db:"id"`
	Title      string          `db:"title"`
	Value      decimal.Decimal `db:"value"`
	Type       TransactionType `db:"type"`
	CategoryID uuid.UUID       `db:"category_id"`
	CreatedAt  time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Title      string
	Value      decimal.Decimal
	Type       TransactionType
	CategoryID uuid.UUID
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	CategoryID *uuid.UUID
	Type       *TransactionType
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	BulkInsert(ctx context.Context, creates []*TransactionCreate) ([]*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
