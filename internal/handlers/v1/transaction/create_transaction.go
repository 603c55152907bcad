package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Title    string `json:"title" minLength:"1" required:"true" doc:"Title of the transaction"`
	Value    string `json:"value" required:"true" doc:"Non-negative decimal amount"`
	Type     string `json:"type" required:"true" enum:"income,outcome" doc:"Transaction type"`
	Category string `json:"category" required:"true" doc:"Category title, created when unknown"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, input service.CreateTransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a new transaction, creating its category when the title is unknown. An outcome may not exceed the current balance.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.CreateTransactionInput, error) {
	value, err := decimal.NewFromString(input.Body.Value)
	if err != nil {
		return service.CreateTransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid value", err)
	}
	if value.IsNegative() {
		return service.CreateTransactionInput{}, huma.NewError(http.StatusBadRequest, "value must be non-negative")
	}

	return service.CreateTransactionInput{
		Title:    input.Body.Title,
		Value:    value,
		Type:     service.TransactionType(input.Body.Type),
		Category: input.Body.Category,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	svcInput, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.TransactionService.Create(ctx, svcInput)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrInsufficientBalance) {
			return nil, huma.NewError(http.StatusBadRequest, "insufficient balance", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromService(*created),
	}, nil
}
