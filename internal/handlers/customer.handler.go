package handlers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fasthttp/router"
	"github.com/wingman/logbook/internal/model"
	xhttp "github.com/wingman/logbook/pkg/http"
)

type LedgerService interface {
	RegisterCustomer(ctx context.Context, p model.CustomerCreateRequest) (*model.Customer, error)
	RecordTransaction(ctx context.Context, p model.TransactionCreateRequest) (*model.Transaction, error)
	ListCustomers(ctx context.Context) ([]*model.Customer, error)
	SearchCustomers(ctx context.Context, q string) ([]*model.Customer, error)
	ListAuditEntries(ctx context.Context, f model.AuditFilter) ([]*model.AuditEntry, int64, error)
}

type CustomerHandler struct {
	svc LedgerService
}

func RegisterCustomerRoutes(e *router.Group, h *CustomerHandler) {
	e.POST("/customers", h.CreateCustomer)
	e.GET("/customers", h.ListCustomers)
	e.GET("/customers/search", h.SearchCustomers)
}

func NewCustomerHandler(svc LedgerService) *CustomerHandler {
	return &CustomerHandler{
		svc: svc,
	}
}

type customerListResponse struct {
	Items []*model.Customer `json:"items"`
	Total int               `json:"total"`
}

func (h *CustomerHandler) CreateCustomer(ctx *xhttp.RequestCtx) {
	var req model.CustomerCreateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	customer, err := h.svc.RegisterCustomer(ctx, req)
	if err != nil {
		writeError(ctx, statusFromError(err), err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, customer)
}

func (h *CustomerHandler) ListCustomers(ctx *xhttp.RequestCtx) {
	items, err := h.svc.ListCustomers(ctx)
	if err != nil {
		writeError(ctx, statusFromError(err), err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusOK, customerListResponse{Items: items, Total: len(items)})
}

func (h *CustomerHandler) SearchCustomers(ctx *xhttp.RequestCtx) {
	items, err := h.svc.SearchCustomers(ctx, query(ctx, "q"))
	if err != nil {
		writeError(ctx, statusFromError(err), err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusOK, customerListResponse{Items: items, Total: len(items)})
}

/* ------------------------------ shared helpers ------------------------------ */

func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	body := ctx.PostBody()
	return json.Unmarshal(body, dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeError(ctx *xhttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, map[string]string{"error": msg})
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}

// statusFromError maps the service error taxonomy onto HTTP codes.
func statusFromError(err error) int {
	var validationErr *model.ValidationError
	var constraintErr *model.ConstraintError
	var storageErr *model.StorageError

	switch {
	case errors.As(err, &validationErr):
		return xhttp.StatusBadRequest
	case errors.As(err, &constraintErr):
		return xhttp.StatusUnprocessableEntity
	case errors.Is(err, model.ErrCustomerNotFound):
		return xhttp.StatusNotFound
	case errors.As(err, &storageErr):
		return xhttp.StatusInternalServerError
	default:
		return xhttp.StatusBadRequest
	}
}
