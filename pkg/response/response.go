package response

import (
	"net/http"
	"strconv"

	"anoa.com/makanlist/pkg/apperror"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (int, error) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, apperror.ErrUnauthorized
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, apperror.ErrUnauthorized
		}
		return id, nil
	default:
		return 0, apperror.ErrUnauthorized
	}
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		zap.L().Error("internal error", zap.Error(err), zap.String("path", c.Request.URL.Path))
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// NotFound is the canonical "not found or not authorized" response.
// The store intentionally does not distinguish the two cases, so
// neither do we.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "resource tidak ditemukan"})
}
