package handlers

import (
	"strconv"
	"strings"

	"github.com/fasthttp/router"
	"github.com/wingman/logbook/internal/model"
	xhttp "github.com/wingman/logbook/pkg/http"
)

type AuditHandler struct {
	svc LedgerService
}

func RegisterAuditRoutes(e *router.Group, h *AuditHandler) {
	e.GET("/logs", h.ListAuditEntries)
}

func NewAuditHandler(svc LedgerService) *AuditHandler {
	return &AuditHandler{
		svc: svc,
	}
}

type auditListResponse struct {
	Items []*model.AuditEntry `json:"items"`
	Total int64               `json:"total"`
}

func (h *AuditHandler) ListAuditEntries(ctx *xhttp.RequestCtx) {
	var f model.AuditFilter

	if v := query(ctx, "table"); v != "" {
		f.TableName = &v
	}
	if v := query(ctx, "record_id"); v != "" {
		if id, e := strconv.ParseInt(v, 10, 64); e == nil {
			f.RecordID = &id
		}
	}
	if v := query(ctx, "limit"); v != "" {
		if n, e := strconv.Atoi(v); e == nil {
			f.Limit = n
		}
	}
	if v := query(ctx, "offset"); v != "" {
		if n, e := strconv.Atoi(v); e == nil {
			f.Offset = n
		}
	}
	if strings.EqualFold(query(ctx, "order"), "desc") {
		f.Desc = true
	}

	items, total, err := h.svc.ListAuditEntries(ctx, f)
	if err != nil {
		writeError(ctx, statusFromError(err), err.Error())
		return
	}
	writeJSON(ctx, xhttp.StatusOK, auditListResponse{Items: items, Total: total})
}
