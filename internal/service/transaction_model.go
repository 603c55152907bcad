package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// TransactionType represents a transaction type in the service layer.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeOutcome TransactionType = "outcome"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID         uuid.UUID
	Title      string
	Value      decimal.Decimal
	Type       TransactionType
	CategoryID uuid.UUID
	CreatedAt  time.Time
}

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	Title     string
	CreatedAt time.Time
}

// Balance carries the running totals over all persisted transactions.
type Balance struct {
	Income  decimal.Decimal
	Outcome decimal.Decimal
	Total   decimal.Decimal
}

func transactionTypeToStorage(t TransactionType) sqlconfig.TransactionType {
	return sqlconfig.TransactionType(t)
}

func transactionTypeFromStorage(t sqlconfig.TransactionType) TransactionType {
	return TransactionType(t)
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:         row.ID,
		Title:      row.Title,
		Value:      row.Value,
		Type:       transactionTypeFromStorage(row.Type),
		CategoryID: row.CategoryID,
		CreatedAt:  row.CreatedAt,
	}
}

func categoryFromStorage(row *sqlconfig.Category) Category {
	return Category{
		ID:        row.ID,
		Title:     row.Title,
		CreatedAt: row.CreatedAt,
	}
}
