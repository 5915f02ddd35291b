package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          int64           `json:"transaction_id"`
	CustomerID  int64           `json:"customer_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

// TransactionCreateRequest is the input for recording a transaction
// against a customer. Amount is nullable on the wire so a missing amount
// can be told apart from an explicit zero.
type TransactionCreateRequest struct {
	CustomerID  int64               `json:"customer_id"`
	Type        string              `json:"type"`
	Amount      decimal.NullDecimal `json:"amount"`
	Description string              `json:"description,omitempty"`
}

func (p TransactionCreateRequest) Validate() error {
	if p.CustomerID == 0 {
		return &ValidationError{Field: "customer_id", Reason: "is required"}
	}
	if p.Type == "" {
		return &ValidationError{Field: "type", Reason: "is required"}
	}
	if !p.Amount.Valid {
		return &ValidationError{Field: "amount", Reason: "is required"}
	}
	return nil
}
