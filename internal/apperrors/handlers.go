package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// errorBody is the failure half of the shared response envelope.
type errorBody struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// HandleError writes an AppError as the standard JSON envelope.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		log.Printf("server error: %v", err)
	}

	body := errorBody{Message: err.Message}
	if fields, ok := err.Details.([]FieldError); ok {
		body.Errors = fields
	}
	c.AbortWithStatusJSON(err.HTTPCode, body)
}
