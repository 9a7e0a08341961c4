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

// FeeHandler serves fee quotes and fee rule administration.
type FeeHandler struct {
	catalog ports.FeeCatalog
}

// NewFeeHandler creates a new FeeHandler.
func NewFeeHandler(catalog ports.FeeCatalog) *FeeHandler {
	return &FeeHandler{catalog: catalog}
}

// Quote handles POST /api/v1/fees/quote.
func (h *FeeHandler) Quote(c *gin.Context) {
	var req dto.FeeQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	quote, err := h.catalog.QuoteFee(c.Request.Context(), ports.FeeQuoteRequest{
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Tier:            domain.Tier(req.Tier),
		Region:          req.Region,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.FeeQuoteResponse{
		RuleName:    quote.Rule.Name,
		FeeType:     quote.Rule.FeeType,
		FeeAmount:   quote.FeeAmount,
		Total:       quote.Total,
		Currency:    quote.Rule.Currency,
		DefaultRule: quote.Rule.IsDefault(),
	}
	if quote.Rule.Calculation != nil {
		resp.CalculationType = string(quote.Rule.Calculation.Type())
	}
	if !resp.DefaultRule {
		resp.RuleID = quote.Rule.ID.String()
	}
	response.OK(c, resp)
}

// ListRules handles GET /api/v1/fee-rules.
func (h *FeeHandler) ListRules(c *gin.Context) {
	var q dto.FeeRuleListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	rules, err := h.catalog.ListFeeRules(c.Request.Context(), q.ActiveOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rules)
}

// GetRule handles GET /api/v1/fee-rules/:id.
func (h *FeeHandler) GetRule(c *gin.Context) {
	id, ok := ruleID(c)
	if !ok {
		return
	}

	rule, err := h.catalog.GetFeeRule(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rule)
}

// CreateRule handles POST /api/v1/fee-rules.
func (h *FeeHandler) CreateRule(c *gin.Context) {
	var req dto.CreateFeeRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	rule, err := h.catalog.CreateFeeRule(c.Request.Context(), req.ToDomain())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, rule.ID.String())
	response.Created(c, rule)
}

// DeactivateRule handles POST /api/v1/fee-rules/:id/deactivate.
func (h *FeeHandler) DeactivateRule(c *gin.Context) {
	id, ok := ruleID(c)
	if !ok {
		return
	}

	rule, err := h.catalog.DeactivateFeeRule(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, rule.ID.String())
	response.OK(c, rule)
}

func ruleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("fee rule id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
