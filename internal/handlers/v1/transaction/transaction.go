package transaction

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID         string `json:"id" doc:"Transaction UUID"`
	Title      string `json:"title" doc:"Title of the transaction"`
	Value      string `json:"value" doc:"Decimal amount"`
	Type       string `json:"type" doc:"income or outcome"`
	CategoryID string `json:"categoryID" doc:"Category UUID"`
	CreatedAt  string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:         tx.ID.String(),
		Title:      tx.Title,
		Value:      tx.Value.String(),
		Type:       string(tx.Type),
		CategoryID: tx.CategoryID.String(),
		CreatedAt:  tx.CreatedAt.Format(time.RFC3339),
	}
}
