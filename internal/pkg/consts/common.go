package consts

const (
	// MaxMediaPerInvitation 单个邀请可关联的媒体上限
	MaxMediaPerInvitation = 20
)

const (
	// AuthTokenName 同名令牌同一时刻只有一个有效
	AuthTokenName = "auth_token"
)
