package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RevenueHandler handles revenue recognition, settlement and the ledger view.
type RevenueHandler struct {
	recognizer ports.RevenueRecognizer
	batcher    ports.SettlementBatcher
	reporting  ports.ReportingService
}

// NewRevenueHandler creates a new RevenueHandler.
func NewRevenueHandler(recognizer ports.RevenueRecognizer, batcher ports.SettlementBatcher, reporting ports.ReportingService) *RevenueHandler {
	return &RevenueHandler{recognizer: recognizer, batcher: batcher, reporting: reporting}
}

// Record handles POST /api/v1/revenue.
func (h *RevenueHandler) Record(c *gin.Context) {
	var req dto.RecordRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	rec, err := h.recognizer.RecordRevenue(c.Request.Context(), ports.RecordRevenueRequest{
		Reference:                req.Reference,
		RevenueType:              req.RevenueType,
		Amount:                   req.Amount,
		Currency:                 req.Currency,
		AssociatedTransactionRef: req.AssociatedTransactionRef,
		Status:                   domain.RevenueStatus(req.Status),
		TransactionDate:          req.TransactionDate,
		Metadata:                 req.Metadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, rec.Reference)
	response.Created(c, rec)
}

// List handles GET /api/v1/revenue.
func (h *RevenueHandler) List(c *gin.Context) {
	var q dto.RevenueListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 20
	}

	params := ports.RevenueListParams{Page: q.Page, PageSize: q.PageSize}
	if q.Status != "" {
		status := domain.RevenueStatus(q.Status)
		params.Status = &status
	}

	recs, total, err := h.reporting.ListRevenue(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, recs, total, q.Page, q.PageSize)
}

// Settle handles POST /api/v1/settlements.
func (h *RevenueHandler) Settle(c *gin.Context) {
	var req dto.SettleBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	ids := make([]uuid.UUID, 0, len(req.RevenueIDs))
	for _, raw := range req.RevenueIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("revenue_ids must be UUIDs"))
			return
		}
		ids = append(ids, id)
	}

	result, err := h.batcher.SettleBatch(c.Request.Context(), ports.SettleBatchRequest{
		RevenueIDs:     ids,
		BatchRef:       req.BatchRef,
		SettlementDate: req.SettlementDate,
		Notes:          req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, result.BatchRef)
	response.OK(c, result)
}

// Ledger handles GET /api/v1/ledger/:reference.
func (h *RevenueHandler) Ledger(c *gin.Context) {
	view, err := h.reporting.GetLedger(c.Request.Context(), c.Param("reference"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LedgerResponse{
		TransactionRef: view.Reference,
		Entries:        view.Entries,
		TotalDebit:     view.TotalDebit,
		TotalCredit:    view.TotalCredit,
		Balanced:       view.Balanced,
	})
}
