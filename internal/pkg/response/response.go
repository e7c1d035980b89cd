package response

import (
	"errors"
	"net/http"

	"resortbooking/internal/domain"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// FromError maps the domain error taxonomy onto the response envelope.
// Validation failures carry field-keyed details; anything unrecognized is a
// 500 with no internals leaked.
func FromError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, gin.H{ve.Field: ve.Message})
		return
	}
	var nf *domain.NotFoundError
	if errors.As(err, &nf) || errors.Is(err, gorm.ErrRecordNotFound) {
		msg := "not found"
		if nf != nil {
			msg = nf.Error()
		}
		Error(c, http.StatusNotFound, "NOT_FOUND", msg)
		return
	}
	var sc *domain.StateConflictError
	if errors.As(err, &sc) {
		Error(c, http.StatusBadRequest, "STATE_CONFLICT", sc.Message)
		return
	}
	var ge *domain.GatewayError
	if errors.As(err, &ge) {
		Error(c, http.StatusBadRequest, "GATEWAY_ERROR", ge.Message)
		return
	}
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
}
