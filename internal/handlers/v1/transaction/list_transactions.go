package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct{}

// ListTransactionsBalance is the balance triple carried alongside the listed
// transactions.
type ListTransactionsBalance struct {
	Income  string `json:"income" doc:"Sum of all income transactions"`
	Outcome string `json:"outcome" doc:"Sum of all outcome transactions"`
	Total   string `json:"total" doc:"Income minus outcome"`
}

// ListTransactionsBody is the response body for listing transactions.
type ListTransactionsBody struct {
	Transactions []Transaction           `json:"transactions" doc:"All transactions, newest first"`
	Balance      ListTransactionsBalance `json:"balance" doc:"Totals over all transactions"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	List(ctx context.Context) ([]service.Transaction, error)
}

// balanceGetter is the interface for computing the balance.
type balanceGetter interface {
	GetBalance(ctx context.Context) (service.Balance, error)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
	BalanceService     balanceGetter
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister, balance balanceGetter) *ListTransactionsHandler {
	return &ListTransactionsHandler{
		TransactionService: svc,
		BalanceService:     balance,
	}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns all transactions, newest first, together with the current balance.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, _ *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.List(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	balance, err := h.BalanceService.GetBalance(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute balance", err)
	}

	body := ListTransactionsBody{
		Transactions: make([]Transaction, len(transactions)),
		Balance: ListTransactionsBalance{
			Income:  balance.Income.String(),
			Outcome: balance.Outcome.String(),
			Total:   balance.Total.String(),
		},
	}
	for i, tx := range transactions {
		body.Transactions[i] = fromService(tx)
	}
	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	return &ListTransactionsOutput{Body: body}, nil
}
