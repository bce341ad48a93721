package handler

import (
	"github.com/gin-gonic/gin"
)

// currentUserID 取鉴权中间件注入的用户 id，未登录为 0
func currentUserID(c *gin.Context) uint64 {
	return c.GetUint64("user_id")
}
