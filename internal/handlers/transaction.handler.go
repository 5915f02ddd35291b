package handlers

import (
	"github.com/fasthttp/router"
	"github.com/wingman/logbook/internal/model"
	xhttp "github.com/wingman/logbook/pkg/http"
)

type TransactionHandler struct {
	svc LedgerService
}

func RegisterTransactionRoutes(e *router.Group, h *TransactionHandler) {
	e.POST("/transactions", h.CreateTransaction)
}

func NewTransactionHandler(svc LedgerService) *TransactionHandler {
	return &TransactionHandler{
		svc: svc,
	}
}

func (h *TransactionHandler) CreateTransaction(ctx *xhttp.RequestCtx) {
	var req model.TransactionCreateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	txn, err := h.svc.RecordTransaction(ctx, req)
	if err != nil {
		writeError(ctx, statusFromError(err), err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, txn)
}
