// en pkg/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Códigos de error estables para los clientes de la API de ingesta.
const (
	CodeBadRequest      = "bad_request"
	CodeUnknownKind     = "unknown_event_kind"
	CodeMalformedEvent  = "malformed_event"
	CodePublishFailed   = "publish_failed"
	CodeInternalFailure = "internal_error"
)

// ErrorResponse define la estructura estándar para las respuestas de error.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// SendSuccess envía una respuesta exitosa con un payload de datos.
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"data": data,
	})
}

// SendError envía una respuesta de error con un formato estandarizado.
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"error": ErrorResponse{
			Message: message,
			Code:    code,
		},
	})
}

// --- Helpers específicos para errores comunes ---

func SendBadRequest(c *gin.Context, code, message string) {
	SendError(c, http.StatusBadRequest, code, message)
}

func SendNotFound(c *gin.Context, code, message string) {
	SendError(c, http.StatusNotFound, code, message)
}

func SendBadGateway(c *gin.Context, code, message string) {
	SendError(c, http.StatusBadGateway, code, message)
}

func SendInternalServerError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, CodeInternalFailure, message)
}
