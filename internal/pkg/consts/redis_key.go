package consts

const (
	// CurrentTokenKey + userID + ":" + tokenName -> 当前有效令牌的签名
	CurrentTokenKey = "auth:token:current:"
	// MediaPendingKey 已写入对象存储但尚未落库的文件
	MediaPendingKey = "media:pending"
)
