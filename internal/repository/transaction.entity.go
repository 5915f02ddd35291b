package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wingman/logbook/internal/model"
)

type TransactionEntity struct {
	ID          int64           `db:"transaction_id" gorm:"primaryKey;autoIncrement;column:transaction_id"`
	CustomerID  int64           `db:"customer_id"    gorm:"column:customer_id;not null;index"`
	Type        string          `db:"type"           gorm:"column:type"`
	Amount      decimal.Decimal `db:"amount"         gorm:"column:amount;type:numeric(10,2);not null"`
	Description string          `db:"description"    gorm:"column:description;type:text"`
	Date        time.Time       `db:"date"           gorm:"column:date;autoCreateTime"`
}

func (TransactionEntity) TableName() string {
	return "transactions"
}

func toTransactionEntity(m *model.Transaction) *TransactionEntity {
	if m == nil {
		return nil
	}
	return &TransactionEntity{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		Type:        m.Type,
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.Date,
	}
}

func toTransactionModel(e *TransactionEntity) *model.Transaction {
	if e == nil {
		return nil
	}
	return &model.Transaction{
		ID:          e.ID,
		CustomerID:  e.CustomerID,
		Type:        e.Type,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
	}
}
