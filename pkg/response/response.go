package response

import (
	"errors"
	"net/http"
	"time"

	"wallet-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is where the RequestID middleware stores the request id.
const requestIDKey = "request_id"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope. Reason is only set for
// eligibility rejections.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// Paginated wraps a page of items with its paging metadata.
type Paginated struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

func OK(c *gin.Context, data interface{}) {
	success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	success(c, http.StatusCreated, data)
}

// Page sends a 200 response with one page of items.
func Page(c *gin.Context, items interface{}, total int64, page, pageSize int) {
	success(c, http.StatusOK, Paginated{Items: items, Total: total, Page: page, PageSize: pageSize})
}

// Error renders err. An *apperror.AppError keeps its code and status; any
// other error is a 500 with SYS_000. The error itself is attached to the
// gin context for the request logger and never written to the client.
func Error(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}

	body := ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		RequestID: requestID(c),
		Timestamp: now(),
	}
	status := http.StatusInternalServerError

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body.ErrorCode = appErr.Code
		body.Message = appErr.Message
		body.Reason = appErr.Reason
		status = appErr.HTTPStatus
	}
	c.JSON(status, body)
}

func success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Data: data, RequestID: requestID(c), Timestamp: now()})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// requestID falls back to a fresh id when the middleware did not run.
func requestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	return uuid.NewString()
}
