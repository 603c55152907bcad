package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func newTransactionTestService(t *testing.T) (*TransactionService, *sqlconfig.MockITransactionTable, *sqlconfig.MockICategoryTable) {
	t.Helper()
	txTable := sqlconfig.NewMockITransactionTable(t)
	catTable := sqlconfig.NewMockICategoryTable(t)
	store := &storage.Storage{Transactions: txTable, Categories: catTable}
	svc := NewTransactionService(store, NewBalanceCalculator(store), NewCategoryResolver(store))
	return svc, txTable, catTable
}

// -- Create tests --

func TestCreate_IncomeSuccess(t *testing.T) {
	svc, txTable, catTable := newTransactionTestService(t)

	categoryID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	value := decimal.RequireFromString("500.00")

	txTable.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{}, nil)
	catTable.EXPECT().FindByTitle(mock.Anything, "Salary").
		Return(&sqlconfig.Category{ID: categoryID, Title: "Salary"}, nil)
	txTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.Title == "August salary" &&
			c.Value.Equal(value) &&
			c.Type == sqlconfig.TransactionTypeIncome &&
			c.CategoryID == categoryID
	})).Return(&sqlconfig.Transaction{
		ID:         txID,
		Title:      "August salary",
		Value:      value,
		Type:       sqlconfig.TransactionTypeIncome,
		CategoryID: categoryID,
	}, nil)

	created, err := svc.Create(context.Background(), CreateTransactionInput{
		Title:    "August salary",
		Value:    value,
		Type:     TransactionTypeIncome,
		Category: "Salary",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, txID, created.ID)
	assert.Equal(t, TransactionTypeIncome, created.Type)
	assert.Equal(t, categoryID, created.CategoryID)
}

func TestCreate_OutcomeCreatesUnknownCategory(t *testing.T) {
	svc, txTable, catTable := newTransactionTestService(t)

	categoryID := uuid.Must(uuid.NewV4())

	txTable.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{
			makeStorageTransaction("300.00", sqlconfig.TransactionTypeIncome),
		}, nil)
	catTable.EXPECT().FindByTitle(mock.Anything, "Housing").
		Return(nil, sql.ErrNoRows)
	catTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.CategoryCreate) bool {
		return c.Title == "Housing"
	})).Return(&sqlconfig.Category{ID: categoryID, Title: "Housing"}, nil)
	txTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.CategoryID == categoryID && c.Type == sqlconfig.TransactionTypeOutcome
	})).Return(&sqlconfig.Transaction{
		ID:         uuid.Must(uuid.NewV4()),
		Title:      "Rent",
		Value:      decimal.RequireFromString("200.00"),
		Type:       sqlconfig.TransactionTypeOutcome,
		CategoryID: categoryID,
	}, nil)

	created, err := svc.Create(context.Background(), CreateTransactionInput{
		Title:    "Rent",
		Value:    decimal.RequireFromString("200.00"),
		Type:     TransactionTypeOutcome,
		Category: "Housing",
	})

	assert.NoError(t, err)
	assert.Equal(t, categoryID, created.CategoryID)
}

func TestCreate_OutcomeExceedingBalance(t *testing.T) {
	svc, txTable, _ := newTransactionTestService(t)

	// Only the balance scan is expected: nothing may be written and no
	// category may be resolved when the check fails.
	txTable.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{
			makeStorageTransaction("100.00", sqlconfig.TransactionTypeIncome),
		}, nil)

	created, err := svc.Create(context.Background(), CreateTransactionInput{
		Title:    "Rent",
		Value:    decimal.RequireFromString("150.00"),
		Type:     TransactionTypeOutcome,
		Category: "Housing",
	})

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Nil(t, created)
}

func TestCreate_OutcomeEqualToBalance(t *testing.T) {
	svc, txTable, catTable := newTransactionTestService(t)

	categoryID := uuid.Must(uuid.NewV4())
	value := decimal.RequireFromString("100.00")

	txTable.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{
			makeStorageTransaction("100.00", sqlconfig.TransactionTypeIncome),
		}, nil)
	catTable.EXPECT().FindByTitle(mock.Anything, "Housing").
		Return(&sqlconfig.Category{ID: categoryID, Title: "Housing"}, nil)
	txTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.Value.Equal(value) && c.Type == sqlconfig.TransactionTypeOutcome
	})).Return(&sqlconfig.Transaction{
		ID:         uuid.Must(uuid.NewV4()),
		Title:      "Rent",
		Value:      value,
		Type:       sqlconfig.TransactionTypeOutcome,
		CategoryID: categoryID,
	}, nil)

	created, err := svc.Create(context.Background(), CreateTransactionInput{
		Title:    "Rent",
		Value:    value,
		Type:     TransactionTypeOutcome,
		Category: "Housing",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
}

func TestCreate_BalanceScanError(t *testing.T) {
	svc, txTable, _ := newTransactionTestService(t)

	txTable.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	created, err := svc.Create(context.Background(), CreateTransactionInput{
		Title:    "Rent",
		Value:    decimal.RequireFromString("10.00"),
		Type:     TransactionTypeOutcome,
		Category: "Housing",
	})

	assert.Error(t, err)
	assert.Nil(t, created)
}

// -- Delete tests --

func TestDelete_Success(t *testing.T) {
	svc, txTable, _ := newTransactionTestService(t)

	id := uuid.Must(uuid.NewV4())
	txTable.EXPECT().FindByID(mock.Anything, id).
		Return(&sqlconfig.Transaction{ID: id}, nil)
	txTable.EXPECT().Delete(mock.Anything, id).Return(nil)

	err := svc.Delete(context.Background(), id)
	assert.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	svc, txTable, _ := newTransactionTestService(t)

	id := uuid.Must(uuid.NewV4())
	txTable.EXPECT().FindByID(mock.Anything, id).
		Return(nil, sql.ErrNoRows)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_StorageError(t *testing.T) {
	svc, txTable, _ := newTransactionTestService(t)

	id := uuid.Must(uuid.NewV4())
	txTable.EXPECT().FindByID(mock.Anything, id).
		Return(nil, errors.New("database unavailable"))

	err := svc.Delete(context.Background(), id)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

// -- List tests --

func TestList_ReturnsAllTransactions(t *testing.T) {
	svc, txTable, _ := newTransactionTestService(t)

	rows := []*sqlconfig.Transaction{
		makeStorageTransaction("500.00", sqlconfig.TransactionTypeIncome),
		makeStorageTransaction("200.00", sqlconfig.TransactionTypeOutcome),
	}
	txTable.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)

	transactions, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, rows[0].ID, transactions[0].ID)
	assert.Equal(t, TransactionTypeIncome, transactions[0].Type)
	assert.True(t, rows[0].Value.Equal(transactions[0].Value))
}
