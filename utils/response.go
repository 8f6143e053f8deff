package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the uniform success envelope returned by every endpoint.
type ApiResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorResponse carries an HTTP status with a user-facing message.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

func NewError(statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{StatusCode: statusCode, Message: message}
}

func BadRequest(message string) *ErrorResponse {
	return NewError(http.StatusBadRequest, message)
}

func NotFound(message string) *ErrorResponse {
	return NewError(http.StatusNotFound, message)
}

// Respond writes the success envelope.
func Respond(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, ApiResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// RespondError maps any error to the error envelope. Unexpected errors
// surface as 500 without leaking internals beyond their message.
func RespondError(c *gin.Context, err error) {
	var apiErr *ErrorResponse
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{
			"statusCode": apiErr.StatusCode,
			"data":       nil,
			"message":    apiErr.Message,
			"success":    false,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"statusCode": http.StatusInternalServerError,
		"data":       nil,
		"message":    err.Error(),
		"success":    false,
	})
}
