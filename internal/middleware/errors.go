package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/finance-gateway/internal/apperr"
	"github.com/guttosm/finance-gateway/internal/domain/dto"
	"github.com/guttosm/finance-gateway/internal/logger"
)

// ErrorHandler renders the last error attached with c.Error as the error
// envelope, unless the handler already wrote a response.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
//	...
//	_ = c.Error(err)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	AbortWithError(c, c.Errors.Last().Err)
}

// AbortWithError stops the handler chain and writes err as the error
// envelope.
//
// Behavior:
//   - Status comes from the *apperr.Error (foreign errors become 500).
//   - Credential failures are answered with the generic unavailability
//     message; the real cause is only logged, at warn level.
//   - Internal failures log at error level, the rest at debug.
func AbortWithError(c *gin.Context, err error) {
	ae := apperr.From(err)
	if ae == nil {
		ae = apperr.Internal(InternalErrorMessage, nil)
	}
	status := ae.HTTPStatus()
	rid, _ := c.Get(RequestIDKey)

	l := logger.L()
	ev := l.Debug()
	switch ae.Kind {
	case apperr.KindMissingCredential, apperr.KindInvalidCredential:
		ev = l.Warn()
	case apperr.KindInternal:
		ev = l.Error()
	}
	ev.Err(err).
		Str("request_id", toString(rid)).
		Str("kind", ae.Kind.String()).
		Int("status", status).
		Msg("request failed")

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, ae.PublicMessage()))
}
