package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wingman/logbook/internal/model"
	"github.com/wingman/logbook/internal/repository"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Search(ctx context.Context, q string) ([]*model.Customer, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCustomerRepository) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Append(ctx context.Context, table string, action model.AuditAction, recordID int64, oldSnapshot, newSnapshot any) (*model.AuditEntry, error) {
	args := m.Called(ctx, table, action, recordID, oldSnapshot, newSnapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuditEntry), args.Error(1)
}

func (m *MockAuditRepository) List(ctx context.Context, f model.AuditFilter) ([]*model.AuditEntry, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.AuditEntry), args.Get(1).(int64), args.Error(2)
}

func newTestService() (*LedgerService, *MockCustomerRepository, *MockTransactionRepository, *MockAuditRepository) {
	custRepo := new(MockCustomerRepository)
	txnRepo := new(MockTransactionRepository)
	auditRepo := new(MockAuditRepository)
	return NewLedgerService(custRepo, txnRepo, auditRepo), custRepo, txnRepo, auditRepo
}

func TestLedgerService_RegisterCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status and pairs audit entry", func(t *testing.T) {
		svc, custRepo, _, auditRepo := newTestService()

		persisted := &model.Customer{ID: 1, Name: "Asha", Phone: "9999999999", Status: model.CustomerStatusYetToPay}

		custRepo.On("WithinTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		custRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Customer) bool {
			return c.Name == "Asha" && c.Status == model.CustomerStatusYetToPay
		})).Return(persisted, nil)
		auditRepo.On("Append", ctx, model.AuditTableCustomers, model.AuditActionInsert, int64(1), nil,
			mock.MatchedBy(func(p any) bool {
				req, ok := p.(model.CustomerCreateRequest)
				return ok && req.Name == "Asha" && req.Status == model.CustomerStatusYetToPay
			})).Return(&model.AuditEntry{ID: 1}, nil)

		result, err := svc.RegisterCustomer(ctx, model.CustomerCreateRequest{Name: "Asha", Phone: "9999999999"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.ID)
		assert.Equal(t, model.CustomerStatusYetToPay, result.Status)

		custRepo.AssertExpectations(t)
		auditRepo.AssertExpectations(t)
	})

	t.Run("invalid status short-circuits before the unit of work", func(t *testing.T) {
		svc, custRepo, _, auditRepo := newTestService()

		result, err := svc.RegisterCustomer(ctx, model.CustomerCreateRequest{Name: "Asha", Status: "overdue"})
		assert.Nil(t, result)

		var constraintErr *model.ConstraintError
		require.ErrorAs(t, err, &constraintErr)
		assert.Equal(t, "status", constraintErr.Field)
		assert.Equal(t, "overdue", constraintErr.Value)

		custRepo.AssertNotCalled(t, "WithinTransaction", mock.Anything, mock.Anything)
		auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		svc, custRepo, _, _ := newTestService()

		result, err := svc.RegisterCustomer(ctx, model.CustomerCreateRequest{Name: "   "})
		assert.Nil(t, result)

		var validationErr *model.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)

		custRepo.AssertNotCalled(t, "WithinTransaction", mock.Anything, mock.Anything)
	})

	t.Run("audit failure surfaces as storage error", func(t *testing.T) {
		svc, custRepo, _, auditRepo := newTestService()

		persisted := &model.Customer{ID: 7, Name: "Asha", Status: model.CustomerStatusYetToPay}

		custRepo.On("WithinTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		custRepo.On("Create", ctx, mock.Anything).Return(persisted, nil)
		auditRepo.On("Append", ctx, model.AuditTableCustomers, model.AuditActionInsert, int64(7), nil, mock.Anything).
			Return(nil, errors.New("connection lost"))

		result, err := svc.RegisterCustomer(ctx, model.CustomerCreateRequest{Name: "Asha"})
		assert.Nil(t, result)

		var storageErr *model.StorageError
		require.ErrorAs(t, err, &storageErr)
	})
}

func TestLedgerService_RecordTransaction(t *testing.T) {
	ctx := context.Background()

	validRequest := model.TransactionCreateRequest{
		CustomerID: 1,
		Type:       "payment",
		Amount:     decimal.NullDecimal{Decimal: decimal.RequireFromString("500.00"), Valid: true},
	}

	t.Run("pairs transaction with audit entry", func(t *testing.T) {
		svc, custRepo, txnRepo, auditRepo := newTestService()

		persisted := &model.Transaction{ID: 1, CustomerID: 1, Type: "payment", Amount: decimal.RequireFromString("500.00")}

		custRepo.On("WithinTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		custRepo.On("Exists", ctx, int64(1)).Return(nil)
		txnRepo.On("Create", ctx, mock.MatchedBy(func(txn *model.Transaction) bool {
			return txn.CustomerID == 1 && txn.Amount.Equal(decimal.RequireFromString("500.00"))
		})).Return(persisted, nil)
		auditRepo.On("Append", ctx, model.AuditTableTransactions, model.AuditActionInsert, int64(1), nil, mock.Anything).
			Return(&model.AuditEntry{ID: 2}, nil)

		result, err := svc.RecordTransaction(ctx, validRequest)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.ID)
		assert.Equal(t, int64(1), result.CustomerID)

		custRepo.AssertExpectations(t)
		txnRepo.AssertExpectations(t)
		auditRepo.AssertExpectations(t)
	})

	t.Run("missing amount fails validation", func(t *testing.T) {
		svc, custRepo, _, _ := newTestService()

		result, err := svc.RecordTransaction(ctx, model.TransactionCreateRequest{CustomerID: 1, Type: "payment"})
		assert.Nil(t, result)

		var validationErr *model.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "amount", validationErr.Field)

		custRepo.AssertNotCalled(t, "WithinTransaction", mock.Anything, mock.Anything)
	})

	t.Run("missing type fails validation", func(t *testing.T) {
		svc, custRepo, _, _ := newTestService()

		result, err := svc.RecordTransaction(ctx, model.TransactionCreateRequest{
			CustomerID: 1,
			Amount:     decimal.NullDecimal{Decimal: decimal.RequireFromString("500.00"), Valid: true},
		})
		assert.Nil(t, result)

		var validationErr *model.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "type", validationErr.Field)

		custRepo.AssertNotCalled(t, "WithinTransaction", mock.Anything, mock.Anything)
	})

	t.Run("unknown customer", func(t *testing.T) {
		svc, custRepo, txnRepo, auditRepo := newTestService()

		custRepo.On("WithinTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		custRepo.On("Exists", ctx, int64(1)).Return(repository.ErrCustomerNotFound)

		result, err := svc.RecordTransaction(ctx, validRequest)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, model.ErrCustomerNotFound)

		txnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		auditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLedgerService_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("list passes through", func(t *testing.T) {
		svc, custRepo, _, _ := newTestService()

		customers := []*model.Customer{{ID: 1, Name: "Asha"}}
		custRepo.On("List", ctx).Return(customers, nil)

		result, err := svc.ListCustomers(ctx)
		require.NoError(t, err)
		assert.Equal(t, customers, result)
	})

	t.Run("search passes through", func(t *testing.T) {
		svc, custRepo, _, _ := newTestService()

		customers := []*model.Customer{{ID: 1, Name: "Asha"}}
		custRepo.On("Search", ctx, "asha").Return(customers, nil)

		result, err := svc.SearchCustomers(ctx, "asha")
		require.NoError(t, err)
		assert.Equal(t, customers, result)
	})

	t.Run("audit listing passes through", func(t *testing.T) {
		svc, _, _, auditRepo := newTestService()

		entries := []*model.AuditEntry{{ID: 1}}
		auditRepo.On("List", ctx, mock.Anything).Return(entries, int64(1), nil)

		result, total, err := svc.ListAuditEntries(ctx, model.AuditFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, entries, result)
	})
}
