package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/comedor/pkg/logger"
	"github.com/d60-Lab/comedor/pkg/response"
)

// Recovery 捕获 panic，上报 Sentry 后返回 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			hub := sentry.CurrentHub().Clone()
			hub.Scope().SetRequest(c.Request)
			hub.Scope().SetTag("request_id", GetRequestID(c))
			hub.Recover(rec)

			logger.Error("panic recovered",
				zap.String("request_id", GetRequestID(c)),
				zap.String("path", c.Request.URL.Path),
				zap.Any("panic", rec),
				zap.Stack("stack"))
			response.InternalError(c, fmt.Errorf("error interno: %v", rec))
		}()
		c.Next()
	}
}
