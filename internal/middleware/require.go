package middleware

import (
	"net/http"

	"bioacoustic-monitor/internal/authz"
	"bioacoustic-monitor/internal/logger"
	"bioacoustic-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Require lets the request through only if the principal's role may perform
// action on resource.
func Require(resource authz.Resource, action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := authz.FromContext(c.Request.Context())
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthenticated")
			c.Abort()
			return
		}

		if !authz.CanAccess(p.Role, resource, action) {
			logger.Warn("Access denied",
				zap.String("request_id", GetRequestID(c)),
				zap.String("user_id", p.UserID.String()),
				zap.String("role", string(p.Role)),
				zap.String("resource", string(resource)),
				zap.String("action", string(action)),
			)
			utils.ErrorResponse(c, http.StatusForbidden, "forbidden")
			c.Abort()
			return
		}

		c.Next()
	}
}
