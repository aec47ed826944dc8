package httperr

import (
	"errors"
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

// Reply maps a use-case error onto the HTTP response. Business rule
// violations and uniqueness conflicts become 400, missing entities 404,
// everything else 500.
func Reply(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		BadRequest(c, be.Code, be.Message)
		return
	}

	var nf NotFoundError
	if errors.As(err, &nf) {
		NotFound(c, nf.Code, nf.Message)
		return
	}

	Internal(c, "internal_error", "internal server error")
}
