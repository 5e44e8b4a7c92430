package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/finance-gateway/internal/domain/dto"
	"github.com/guttosm/finance-gateway/internal/logger"
)

// InternalErrorMessage is the client-facing text of every 500 envelope.
const InternalErrorMessage = "Internal server error"

// RecoveryMiddleware returns a Gin middleware that recovers from panics,
// logs the stack trace and answers with the 500 error envelope.
//
// The panic value is logged but never sent to the client.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Get(RequestIDKey)
				logger.L().Error().
					Str("request_id", toString(rid)).
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse(http.StatusInternalServerError, InternalErrorMessage))
			}
		}()

		c.Next()
	}
}
