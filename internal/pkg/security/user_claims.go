package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 定义了 Token 中需要包含的业务信息
type UserClaims struct {
	UserID    uint64 `json:"user_id"`
	TokenName string `json:"token_name"`
	jwt.RegisteredClaims
}
