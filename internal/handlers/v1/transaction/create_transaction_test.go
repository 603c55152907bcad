package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

// mockTransactionCreator is a mock for transactionCreator.
type mockTransactionCreator struct {
	mock.Mock
}

func (m *mockTransactionCreator) Create(ctx context.Context, input service.CreateTransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, input)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

// newCreateTestAPI registers the handler against a humatest API and returns it.
func newCreateTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

// -- parseCreateTransactionInput unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Title:    "Salary",
			Value:    "2500.00",
			Type:     "income",
			Category: "Work",
		},
	}

	parsed, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, "Salary", parsed.Title)
	assert.True(t, parsed.Value.Equal(decimal.RequireFromString("2500.00")))
	assert.Equal(t, service.TransactionTypeIncome, parsed.Type)
	assert.Equal(t, "Work", parsed.Category)
}

func TestParseCreateTransactionInput_InvalidValue(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Title:    "Salary",
			Value:    "not-a-decimal",
			Type:     "income",
			Category: "Work",
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

func TestParseCreateTransactionInput_NegativeValue(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Title:    "Refund gone wrong",
			Value:    "-12.50",
			Type:     "outcome",
			Category: "Shopping",
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	txID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionCreator)
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(input service.CreateTransactionInput) bool {
		return input.Title == "Salary" &&
			input.Value.Equal(decimal.RequireFromString("2500.00")) &&
			input.Type == service.TransactionTypeIncome &&
			input.Category == "Work"
	})).Return(&service.Transaction{
		ID:         txID,
		Title:      "Salary",
		Value:      decimal.RequireFromString("2500.00"),
		Type:       service.TransactionTypeIncome,
		CategoryID: categoryID,
		CreatedAt:  now,
	}, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Title:    "Salary",
		Value:    "2500.00",
		Type:     "income",
		Category: "Work",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, "Salary", body.Title)
	assert.Equal(t, "2500", body.Value)
	assert.Equal(t, "income", body.Type)
	assert.Equal(t, categoryID.String(), body.CategoryID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	// Huma schema validation rejects the request before the handler runs.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Title: "Salary",
		// Value, Type, Category omitted
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_TitleTooShort(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Title:    "", // minLength:"1" violation
		Value:    "10.00",
		Type:     "income",
		Category: "Work",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	// Huma's enum schema validation rejects this before the handler runs.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Title:    "Salary",
		Value:    "10.00",
		Type:     "transfer",
		Category: "Work",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_InvalidValue(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	// Value is a plain string with no Huma format tag, so parseCreateTransactionInput
	// handles validation and returns 400.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Title:    "Salary",
		Value:    "not-a-decimal",
		Type:     "income",
		Category: "Work",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_NegativeValue(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Title:    "Groceries",
		Value:    "-5.00",
		Type:     "outcome",
		Category: "Food",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_InsufficientBalance(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("Create", mock.Anything, mock.Anything).
		Return((*service.Transaction)(nil), service.ErrInsufficientBalance)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Title:    "Rent",
		Value:    "1200.00",
		Type:     "outcome",
		Category: "Housing",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("Create", mock.Anything, mock.Anything).
		Return((*service.Transaction)(nil), errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Title:    "Salary",
		Value:    "10.00",
		Type:     "income",
		Category: "Work",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
