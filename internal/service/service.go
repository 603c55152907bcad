package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Balance     *BalanceCalculator
	Import      *ImportService
}

// NewService creates a new Service with the given storage. The category
// resolver is internal to the transaction and import services.
func NewService(store *storage.Storage, log *logrus.Logger) *Service {
	balance := NewBalanceCalculator(store)
	categories := NewCategoryResolver(store)

	return &Service{
		Transaction: NewTransactionService(store, balance, categories),
		Balance:     balance,
		Import:      NewImportService(store, categories, log),
	}
}
