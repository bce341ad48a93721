package middleware

import (
	"context"
	"strings"

	"uspage/internal/pkg/consts"
	"uspage/internal/pkg/redis"
	"uspage/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，失败或缺失则 UID 为 0
// 公开读取路径用它来区分属主访问和匿名访问
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := security.ValidateToken(token)
		if err != nil {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		signature, err := security.ExtractSignature(token)
		if err != nil {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		current, redisErr := redis.GetCurrentToken(c.Request.Context(), claims.UserID, consts.AuthTokenName)
		if redisErr != nil || current == "" || current != signature {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
