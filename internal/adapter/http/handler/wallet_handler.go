package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet eligibility checks.
type WalletHandler struct {
	guard ports.WalletGuard
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(guard ports.WalletGuard) *WalletHandler {
	return &WalletHandler{guard: guard}
}

// CheckEligibility handles POST /api/v1/wallets/:ref/eligibility. A rejected
// wallet gets the eligibility error with its reason.
func (h *WalletHandler) CheckEligibility(c *gin.Context) {
	var req dto.EligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.guard.CheckEligibility(c.Request.Context(), c.Param("ref"), req.Amount, req.TransactionType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.EligibilityResponse{
		WalletRef: result.WalletRef,
		Eligible:  true,
		FeeAmount: result.FeeAmount,
		FeeType:   result.FeeType,
		Total:     result.Total,
	})
}
