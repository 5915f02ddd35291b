package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerStatus is the payment state of a customer.
type CustomerStatus string

const (
	CustomerStatusYetToPay   CustomerStatus = "yet to pay"
	CustomerStatusProcessing CustomerStatus = "processing"
	CustomerStatusPaid       CustomerStatus = "paid"
)

func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerStatusYetToPay, CustomerStatusProcessing, CustomerStatusPaid:
		return true
	}
	return false
}

func CustomerStatusValues() []string {
	return []string{
		string(CustomerStatusYetToPay),
		string(CustomerStatusProcessing),
		string(CustomerStatusPaid),
	}
}

type Customer struct {
	ID              int64               `json:"customer_id"`
	Name            string              `json:"name"`
	Phone           string              `json:"phone,omitempty"`
	Amount          decimal.NullDecimal `json:"amount"`
	Status          CustomerStatus      `json:"status"`
	UpiVPA          string              `json:"upi_vpa,omitempty"`
	CreditLimit     decimal.NullDecimal `json:"credit_limit"`
	BillingCycleDay *int                `json:"billing_cycle_day,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// CustomerCreateRequest is the input for registering a customer. The json
// tags double as the audit snapshot encoding, so the field names match the
// stored columns.
type CustomerCreateRequest struct {
	Name            string              `json:"name"`
	Phone           string              `json:"phone,omitempty"`
	Amount          decimal.NullDecimal `json:"amount"`
	Status          CustomerStatus      `json:"status"`
	UpiVPA          string              `json:"upi_vpa,omitempty"`
	CreditLimit     decimal.NullDecimal `json:"credit_limit"`
	BillingCycleDay *int                `json:"billing_cycle_day,omitempty"`
}

func (p CustomerCreateRequest) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if p.BillingCycleDay != nil && (*p.BillingCycleDay < 1 || *p.BillingCycleDay > 31) {
		return &ValidationError{Field: "billing_cycle_day", Reason: "must be a day of month between 1 and 31"}
	}
	if !p.Status.Valid() {
		return &ConstraintError{Field: "status", Value: string(p.Status), Allowed: CustomerStatusValues()}
	}
	return nil
}
