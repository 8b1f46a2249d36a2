package middleware

import (
	"fmt"
	"log/slog"

	"github.com/cimile-club/lineup-api/internal/shared/authz"
	sharedContext "github.com/cimile-club/lineup-api/internal/shared/context"
	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// RequireCapability gates a route on the authz capability table.
// JWT 미들웨어 뒤에 등록해야 한다 (context에 role이 있어야 함).
func RequireCapability(cap authz.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := sharedContext.GetUserRole(c)
		if !ok {
			// JWT 미들웨어 없이 등록된 라우트 - 설정 오류
			slog.Error("권한 검사 실패 - context에 역할 정보가 없습니다",
				"path", c.Request.URL.Path,
				"capability", string(cap),
			)
			c.AbortWithStatusJSON(sharedError.InternalServerError.Status, sharedError.InternalServerError)
			return
		}

		if !authz.Allowed(role, cap) {
			required := authz.RequiredRole(cap)
			slog.Warn("권한 없는 요청 거부",
				"role", string(role),
				"required_role", string(required),
				"capability", string(cap),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)

			resp := sharedError.Forbidden
			resp.Message = fmt.Sprintf("%s 권한이 필요합니다.", required)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		c.Next()
	}
}
