package services

import (
	"context"
	"errors"

	"github.com/wingman/logbook/internal/model"
	"github.com/wingman/logbook/internal/repository"
	"github.com/wingman/logbook/pkg/prom"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	List(ctx context.Context) ([]*model.Customer, error)
	Search(ctx context.Context, q string) ([]*model.Customer, error)
	Exists(ctx context.Context, customerID int64) error
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
}

type AuditRepository interface {
	Append(ctx context.Context, table string, action model.AuditAction, recordID int64, oldSnapshot, newSnapshot any) (*model.AuditEntry, error)
	List(ctx context.Context, f model.AuditFilter) ([]*model.AuditEntry, int64, error)
}

// LedgerService couples every store mutation with its audit entry inside
// a single unit of work: either both persist or neither does.
type LedgerService struct {
	customerRepo    CustomerRepository
	transactionRepo TransactionRepository
	auditRepo       AuditRepository
}

func NewLedgerService(customerRepo CustomerRepository, transactionRepo TransactionRepository, auditRepo AuditRepository) *LedgerService {
	return &LedgerService{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		auditRepo:       auditRepo,
	}
}

// RegisterCustomer validates the input, then creates the customer row
// and its audit entry atomically. Validation failures return before the
// unit of work opens, so no partial audit entries can ever occur.
func (s *LedgerService) RegisterCustomer(ctx context.Context, p model.CustomerCreateRequest) (*model.Customer, error) {
	if p.Status == "" {
		p.Status = model.CustomerStatusYetToPay
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	c := &model.Customer{
		Name:            p.Name,
		Phone:           p.Phone,
		Amount:          p.Amount,
		Status:          p.Status,
		UpiVPA:          p.UpiVPA,
		CreditLimit:     p.CreditLimit,
		BillingCycleDay: p.BillingCycleDay,
	}

	var created *model.Customer
	err := s.customerRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.customerRepo.Create(ctx, c)
		if err != nil {
			return &model.StorageError{Op: "create customer", Err: err}
		}

		if _, err = s.auditRepo.Append(ctx, model.AuditTableCustomers, model.AuditActionInsert, created.ID, nil, p); err != nil {
			return &model.StorageError{Op: "append customer audit entry", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	prom.IncrementCounter(prom.SystemLedger, prom.MetricCustomersCreated)
	prom.IncrementCounterVec(prom.SystemLedger, prom.MetricAuditEntriesAppended, model.AuditTableCustomers)
	return created, nil
}

// RecordTransaction mirrors RegisterCustomer for the transactions table.
// The referenced customer must exist; the existence check runs inside
// the same unit of work as the insert.
func (s *LedgerService) RecordTransaction(ctx context.Context, p model.TransactionCreateRequest) (*model.Transaction, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	txn := &model.Transaction{
		CustomerID:  p.CustomerID,
		Type:        p.Type,
		Amount:      p.Amount.Decimal,
		Description: p.Description,
	}

	var created *model.Transaction
	err := s.customerRepo.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.customerRepo.Exists(ctx, p.CustomerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return model.ErrCustomerNotFound
			}
			return &model.StorageError{Op: "check customer", Err: err}
		}

		var err error
		created, err = s.transactionRepo.Create(ctx, txn)
		if err != nil {
			return &model.StorageError{Op: "create transaction", Err: err}
		}

		if _, err = s.auditRepo.Append(ctx, model.AuditTableTransactions, model.AuditActionInsert, created.ID, nil, p); err != nil {
			return &model.StorageError{Op: "append transaction audit entry", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	prom.IncrementCounter(prom.SystemLedger, prom.MetricTransactionsRecorded)
	prom.IncrementCounterVec(prom.SystemLedger, prom.MetricAuditEntriesAppended, model.AuditTableTransactions)
	return created, nil
}
