package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the response envelope.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, errorEnvelope{
		Error: errorBody{Code: CodeValidationError, Message: message},
	})
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, errorEnvelope{
		Error: errorBody{Code: CodeNotFound, Message: message},
	})
}

func respondInternal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, errorEnvelope{
		Error: errorBody{Code: CodeInternal, Message: "internal server error"},
	})
}
