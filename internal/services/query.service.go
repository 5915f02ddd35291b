package services

import (
	"context"

	"github.com/wingman/logbook/internal/model"
)

// Read-only projections. None of these open a unit of work or touch the
// audit log.

func (s *LedgerService) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *LedgerService) SearchCustomers(ctx context.Context, q string) ([]*model.Customer, error) {
	return s.customerRepo.Search(ctx, q)
}

func (s *LedgerService) ListAuditEntries(ctx context.Context, f model.AuditFilter) ([]*model.AuditEntry, int64, error) {
	return s.auditRepo.List(ctx, f)
}
