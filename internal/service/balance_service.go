package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// BalanceCalculator aggregates persisted transactions into running totals.
type BalanceCalculator struct {
	storage *storage.Storage
}

// NewBalanceCalculator creates a new BalanceCalculator.
func NewBalanceCalculator(store *storage.Storage) *BalanceCalculator {
	return &BalanceCalculator{storage: store}
}

// GetBalance recomputes the totals with a full scan over every persisted
// transaction. Nothing is cached between calls. An empty store yields zeros.
func (c *BalanceCalculator) GetBalance(ctx context.Context) (Balance, error) {
	rows, err := c.storage.Transactions.List(ctx, nil)
	if err != nil {
		return Balance{}, err
	}

	income := decimal.Zero
	outcome := decimal.Zero
	for _, row := range rows {
		switch row.Type {
		case sqlconfig.TransactionTypeIncome:
			income = income.Add(row.Value)
		case sqlconfig.TransactionTypeOutcome:
			outcome = outcome.Add(row.Value)
		}
	}

	return Balance{
		Income:  income,
		Outcome: outcome,
		Total:   income.Sub(outcome),
	}, nil
}
