package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/i18n"
	"github.com/guttosm/menu-service/internal/logger"
	"github.com/sony/gobreaker"
)

// ErrorStatus maps a service error to an HTTP status and a message key.
func ErrorStatus(err error) (int, string) {
	var nf *model.NotFoundError
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound, i18n.NotFoundKey(nf.Entity)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

// ErrorHandler returns a middleware that turns errors attached with c.Error
// into the standard error response. Not-found errors are expected traffic
// and are not logged.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := GetRequestID(c)
		status, key := ErrorStatus(err)

		if status != http.StatusNotFound {
			log := logger.Logger()
			log.Error().
				Str("request_id", requestID).
				Err(err).
				Int("status", status).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")
		}

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
			c.AbortWithStatusJSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID))
		}
	}
}
