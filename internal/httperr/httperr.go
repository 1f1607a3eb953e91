package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Handle maps a service error to its HTTP response. Validation and
// duplicate-key failures answer 400, missing records 404, the rest 500
// with the raw error text.
func Handle(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		switch be.Kind {
		case KindNotFound:
			NotFound(c, be.Code, be.Message)
		default:
			BadRequest(c, be.Code, be.Message)
		}
		return
	}
	Internal(c, "internal_error", err.Error())
}
