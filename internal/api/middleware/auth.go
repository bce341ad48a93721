package middleware

import (
	"context"
	"net/http"
	"strings"

	"uspage/internal/pkg/consts"
	"uspage/internal/pkg/redis"
	"uspage/internal/pkg/response"
	"uspage/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 验证 JWT 并将用户身份注入 Context
// 令牌签名必须与 redis 中登记的当前签名一致，旧令牌在新登录或注销后即失效
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "no autenticado")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "token inválido o expirado")
			c.Abort()
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "token inválido o expirado")
			c.Abort()
			return
		}

		current, err := redis.GetCurrentToken(c.Request.Context(), claims.UserID, consts.AuthTokenName)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, "error interno del servidor")
			c.Abort()
			return
		}
		if current == "" || current != signature {
			response.Fail(c, http.StatusUnauthorized, "token inválido o expirado")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
