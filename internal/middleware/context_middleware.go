package middleware

import (
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger stores a logger tagged with the request id in the request
// context. AuthMiddleware adds user_id and company_id to it once the token
// is verified. Install after RequestID.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if contextutil.GetRequestID(ctx) == "" {
			rid := uuid.NewString()
			c.Set("request_id", rid)
			c.Header(RequestIDHeader, rid)
			ctx = contextutil.WithRequestID(ctx, rid)
		}

		ctx = contextutil.WithLogger(ctx, logger.With(contextutil.ExtractMetadata(ctx).Fields()...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
