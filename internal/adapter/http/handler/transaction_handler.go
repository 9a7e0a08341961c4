package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler posts transactions and reads them back.
type TransactionHandler struct {
	poster    ports.TransactionPoster
	reporting ports.ReportingService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(poster ports.TransactionPoster, reporting ports.ReportingService) *TransactionHandler {
	return &TransactionHandler{poster: poster, reporting: reporting}
}

// Post handles POST /api/v1/transactions.
func (h *TransactionHandler) Post(c *gin.Context) {
	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	fees := make([]ports.FeeLineInput, 0, len(req.Fees))
	for _, f := range req.Fees {
		fees = append(fees, ports.FeeLineInput{
			FeeAmount:   f.FeeAmount,
			FeeType:     f.FeeType,
			Description: f.Description,
		})
	}

	txn, err := h.poster.PostTransaction(c.Request.Context(), ports.PostTransactionRequest{
		Reference:       req.Reference,
		TransactionType: req.TransactionType,
		Status:          domain.TransactionStatus(req.Status),
		Sender:          *req.Sender.ToDomain(),
		Receiver:        req.Receiver.ToDomain(),
		Recipient:       req.Recipient.ToDomain(),
		TransferAmount:  req.TransferAmount,
		Currency:        req.Currency,
		Fees:            fees,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, txn.Reference)
	response.Created(c, txn)
}

// Get handles GET /api/v1/transactions/:reference.
func (h *TransactionHandler) Get(c *gin.Context) {
	txn, err := h.reporting.GetTransaction(c.Request.Context(), c.Param("reference"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txn)
}
