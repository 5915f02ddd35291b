package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wingman/logbook/internal/model"
)

type CustomerEntity struct {
	ID              int64               `db:"customer_id"       gorm:"primaryKey;autoIncrement;column:customer_id"`
	Name            string              `db:"name"              gorm:"column:name;not null"`
	Phone           string              `db:"phone"             gorm:"column:phone"`
	Amount          decimal.NullDecimal `db:"amount"            gorm:"column:amount;type:numeric(10,2)"`
	Status          string              `db:"status"            gorm:"column:status;not null;default:yet to pay"`
	UpiVPA          string              `db:"upi_vpa"           gorm:"column:upi_vpa"`
	CreditLimit     decimal.NullDecimal `db:"credit_limit"      gorm:"column:credit_limit;type:numeric(10,2)"`
	BillingCycleDay *int                `db:"billing_cycle_day" gorm:"column:billing_cycle_day"`
	CreatedAt       time.Time           `db:"created_at"        gorm:"column:created_at;autoCreateTime"`
}

func (CustomerEntity) TableName() string {
	return "customers"
}

func toCustomerEntity(m *model.Customer) *CustomerEntity {
	if m == nil {
		return nil
	}
	return &CustomerEntity{
		ID:              m.ID,
		Name:            m.Name,
		Phone:           m.Phone,
		Amount:          m.Amount,
		Status:          string(m.Status),
		UpiVPA:          m.UpiVPA,
		CreditLimit:     m.CreditLimit,
		BillingCycleDay: m.BillingCycleDay,
		CreatedAt:       m.CreatedAt,
	}
}

func toCustomerModel(e *CustomerEntity) *model.Customer {
	if e == nil {
		return nil
	}
	return &model.Customer{
		ID:              e.ID,
		Name:            e.Name,
		Phone:           e.Phone,
		Amount:          e.Amount,
		Status:          model.CustomerStatus(e.Status),
		UpiVPA:          e.UpiVPA,
		CreditLimit:     e.CreditLimit,
		BillingCycleDay: e.BillingCycleDay,
		CreatedAt:       e.CreatedAt,
	}
}

func toCustomerModels(entities []*CustomerEntity) []*model.Customer {
	if entities == nil {
		return nil
	}
	models := make([]*model.Customer, len(entities))
	for i, e := range entities {
		models[i] = toCustomerModel(e)
	}
	return models
}
