package util

import "strconv"

// Uint64ToStr 用于将 uint64 转换为字符串
func Uint64ToStr(i uint64) string {
	return strconv.FormatUint(i, 10)
}

// StrToUint64 解析字符串为 uint64，非法输入返回 0
func StrToUint64(s string) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// PtrStr 用于将 string 转换为 *string
func PtrStr(s string) *string {
	return &s
}

// PtrUint64 用于将 uint64 转换为 *uint64
func PtrUint64(i uint64) *uint64 {
	return &i
}
