package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage    *storage.Storage
	balance    *BalanceCalculator
	categories *CategoryResolver
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, balance *BalanceCalculator, categories *CategoryResolver) *TransactionService {
	return &TransactionService{
		storage:    store,
		balance:    balance,
		categories: categories,
	}
}

// CreateTransactionInput is the input for creating a transaction.
type CreateTransactionInput struct {
	Title    string
	Value    decimal.Decimal
	Type     TransactionType
	Category string
}

// Create creates a new transaction and returns it. An outcome may not exceed
// the balance at the moment of the check; the check and the insert are not
// serialized, so two concurrent outcome creates can both pass and together
// overdraw. The category is created when its title is unknown, which means a
// failed insert can leave behind a category with no transaction.
func (s *TransactionService) Create(ctx context.Context, input CreateTransactionInput) (*Transaction, error) {
	balance, err := s.balance.GetBalance(ctx)
	if err != nil {
		return nil, err
	}

	if input.Type == TransactionTypeOutcome && input.Value.GreaterThan(balance.Total) {
		return nil, ErrInsufficientBalance
	}

	category, err := s.categories.ResolveOne(ctx, input.Category)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Title:      input.Title,
		Value:      input.Value,
		Type:       transactionTypeToStorage(input.Type),
		CategoryID: category.ID,
	})
	if err != nil {
		return nil, err
	}

	transaction := transactionFromStorage(row)
	return &transaction, nil
}

// Delete removes the transaction with the given id. Categories are never
// cascaded.
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.storage.Transactions.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.storage.Transactions.Delete(ctx, id)
}

// List returns all transactions, newest first.
func (s *TransactionService) List(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}

	return transactions, nil
}
