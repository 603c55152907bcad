package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

type mockBalanceGetter struct {
	mock.Mock
}

func (m *mockBalanceGetter) GetBalance(ctx context.Context) (service.Balance, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.Balance), args.Error(1)
}

func newBalanceTestAPI(t *testing.T, svc balanceGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetBalanceHandler(svc).Register(api)
	return api
}

func TestHTTP_GetBalance_Success(t *testing.T) {
	mockSvc := new(mockBalanceGetter)
	mockSvc.On("GetBalance", mock.Anything).Return(service.Balance{
		Income:  decimal.RequireFromString("620.50"),
		Outcome: decimal.RequireFromString("200.00"),
		Total:   decimal.RequireFromString("420.50"),
	}, nil)

	resp := newBalanceTestAPI(t, mockSvc).Get("/v1/balance")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetBalanceBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "620.5", body.Income)
	assert.Equal(t, "200", body.Outcome)
	assert.Equal(t, "420.5", body.Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetBalance_EmptyStore(t *testing.T) {
	mockSvc := new(mockBalanceGetter)
	mockSvc.On("GetBalance", mock.Anything).Return(service.Balance{
		Income:  decimal.Zero,
		Outcome: decimal.Zero,
		Total:   decimal.Zero,
	}, nil)

	resp := newBalanceTestAPI(t, mockSvc).Get("/v1/balance")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetBalanceBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0", body.Income)
	assert.Equal(t, "0", body.Outcome)
	assert.Equal(t, "0", body.Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetBalance_ServiceError(t *testing.T) {
	mockSvc := new(mockBalanceGetter)
	mockSvc.On("GetBalance", mock.Anything).
		Return(service.Balance{}, errors.New("database unavailable"))

	resp := newBalanceTestAPI(t, mockSvc).Get("/v1/balance")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
