package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resp is the standard JSON response body. Success responses carry either
// data (single result) or items (batch result, multiple=true); error
// responses carry a user-facing message and a stable machine code.
type Resp struct {
	Success  bool   `json:"success"`
	Multiple bool   `json:"multiple,omitempty"`
	Data     any    `json:"data,omitempty"`
	Items    any    `json:"items,omitempty"`
	Error    string `json:"error,omitempty"`
	Code     string `json:"code,omitempty"`
}

// NewOKResp returns a new single-result success response.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// NewItemsResp returns a new batch success response.
func NewItemsResp(items any) Resp {
	return Resp{
		Success:  true,
		Multiple: true,
		Items:    items,
	}
}

// NewErrResp returns a new error response with the given code and
// user-facing message.
func NewErrResp(code, message string) Resp {
	return Resp{
		Error: message,
		Code:  code,
	}
}

// OK sends 200 JSON with a single result.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// OKItems sends 200 JSON with a batch result.
func OKItems(c *gin.Context, items any) {
	c.JSON(http.StatusOK, NewItemsResp(items))
}

// Error sends an error response with the given HTTP status, machine code
// and user-facing message.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, NewErrResp(code, message))
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, code, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// TooManyRequests sends a 429 error response.
func TooManyRequests(c *gin.Context, code, message string) {
	Error(c, http.StatusTooManyRequests, code, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, code, message string) {
	Error(c, http.StatusInternalServerError, code, message)
}
