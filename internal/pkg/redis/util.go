package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"uspage/internal/pkg/consts"

	"github.com/redis/go-redis/v9"
)

// SetValue 设置键值对
func SetValue(ctx context.Context, key string, value interface{}) error {
	return Rdb.Set(ctx, key, value, 0).Err()
}

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值
func GetValue(ctx context.Context, key string) (string, error) {
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// DeleteKey 删除一个键
func DeleteKey(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}

// currentTokenKey 某用户某命名凭据的当前有效签名
func currentTokenKey(userID uint64, tokenName string) string {
	return consts.CurrentTokenKey + strconv.FormatUint(userID, 10) + ":" + tokenName
}

// SetCurrentToken 记录当前有效令牌签名，旧签名随之失效
func SetCurrentToken(ctx context.Context, userID uint64, tokenName, signature string, expiration time.Duration) error {
	return Rdb.Set(ctx, currentTokenKey(userID, tokenName), signature, expiration).Err()
}

// GetCurrentToken 获取当前有效令牌签名，无则返回空串
func GetCurrentToken(ctx context.Context, userID uint64, tokenName string) (string, error) {
	return GetValue(ctx, currentTokenKey(userID, tokenName))
}

// DeleteCurrentToken 注销当前令牌
func DeleteCurrentToken(ctx context.Context, userID uint64, tokenName string) error {
	return Rdb.Del(ctx, currentTokenKey(userID, tokenName)).Err()
}

// AddPendingUpload 登记一个已写入对象存储但尚未落库的对象
func AddPendingUpload(ctx context.Context, objectName string) error {
	return Rdb.HSet(ctx, consts.MediaPendingKey, objectName, time.Now().Unix()).Err()
}

// RemovePendingUpload 对象已落库或已清理，移除登记
func RemovePendingUpload(ctx context.Context, objectNames ...string) error {
	if len(objectNames) == 0 {
		return nil
	}
	return Rdb.HDel(ctx, consts.MediaPendingKey, objectNames...).Err()
}

// ListPendingUploads 获取全部待处理对象及登记时间
func ListPendingUploads(ctx context.Context) (map[string]string, error) {
	value, err := Rdb.HGetAll(ctx, consts.MediaPendingKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}
