package util

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// SniffContentType 读取文件头嗅探真实 MIME 类型，不信任客户端声明
// 返回嗅探结果和可重复读取的 reader
func SniffContentType(reader io.Reader) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(reader, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	combined := io.MultiReader(bytes.NewReader(head), reader)
	return contentType, combined, nil
}

// DecodeImageSize 解码图片获取像素尺寸
func DecodeImageSize(data []byte) (width int, height int, err error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// BuildObjectName 生成对象存储路径: users/<userID>/<uuid>.<ext>
func BuildObjectName(userID uint64, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return "users/" + Uint64ToStr(userID) + "/" + uuid.NewString() + ext
}
