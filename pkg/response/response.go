// Package response implements the API envelope: every success is
// {success, data, message}, every failure {success: false, message, errors?}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pm-ajay/monitoring-backend/pkg/apperr"
)

type Envelope struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func OK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

// Error maps the apperr taxonomy onto HTTP status codes and the failure envelope.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindUpload:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	}
	c.JSON(status, Envelope{
		Success: false,
		Message: err.Error(),
		Errors:  apperr.FieldsOf(err),
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}
