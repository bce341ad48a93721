package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// foldDiacritics 去掉重音符号，ñ → n，é → e
	foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// slugMaxLen 列宽 varchar(50)，预留派生冲突时追加 "-N" 序号的空间
const slugMaxLen = 45

// Slugify 将任意标题转为 URL 友好的 slug
// 例: "¿Quieres ser mi San Valentín?" → "quieres-ser-mi-san-valentin"
func Slugify(s string) string {
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		folded = s
	}

	result := strings.ToLower(strings.TrimSpace(folded))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	// 此时只剩 ASCII 字母数字和连字符，按字节截断是安全的
	if len(result) > slugMaxLen {
		result = strings.TrimRight(result[:slugMaxLen], "-")
	}
	return result
}
