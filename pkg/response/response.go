package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Err writes the HTTP mapping of a service error. PermissionError is
// surfaced as 403, distinct from 404, so clients can explain why an
// action is blocked.
func Err(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if kind, ok := apperr.KindOf(err); ok {
		switch kind {
		case apperr.KindValidation:
			status = http.StatusBadRequest
		case apperr.KindNotFound:
			status = http.StatusNotFound
		case apperr.KindPermission:
			status = http.StatusForbidden
		case apperr.KindStorage:
			status = http.StatusInternalServerError
		}
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

func Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResponse{Message: msg})
}
