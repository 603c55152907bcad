package balance

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetBalanceInput is the Huma input for fetching the balance.
type GetBalanceInput struct{}

// GetBalanceBody is the response body for the balance.
type GetBalanceBody struct {
	Income  string `json:"income" doc:"Sum of all income transactions"`
	Outcome string `json:"outcome" doc:"Sum of all outcome transactions"`
	Total   string `json:"total" doc:"Income minus outcome"`
}

// GetBalanceOutput is the Huma output for fetching the balance.
type GetBalanceOutput struct {
	Body GetBalanceBody
}

// balanceGetter is the interface for computing the balance.
type balanceGetter interface {
	GetBalance(ctx context.Context) (service.Balance, error)
}

// GetBalanceHandler handles GET /v1/balance.
type GetBalanceHandler struct {
	BalanceService balanceGetter
}

// NewGetBalanceHandler creates a new GetBalanceHandler.
func NewGetBalanceHandler(svc balanceGetter) *GetBalanceHandler {
	return &GetBalanceHandler{BalanceService: svc}
}

// Register registers the balance endpoint with the Huma API.
func (h *GetBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balance",
		Method:      http.MethodGet,
		Path:        "/v1/balance",
		Summary:     "Get balance",
		Description: "Recomputes income, outcome and total over all transactions.",
		Tags:        []string{"Balance"},
	}, h.handle)
}

func (h *GetBalanceHandler) handle(ctx context.Context, _ *GetBalanceInput) (*GetBalanceOutput, error) {
	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getBalanceMs")
	}
	balance, err := h.BalanceService.GetBalance(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute balance", err)
	}

	return &GetBalanceOutput{
		Body: GetBalanceBody{
			Income:  balance.Income.String(),
			Outcome: balance.Outcome.String(),
			Total:   balance.Total.String(),
		},
	}, nil
}
