package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "valentine title with inverted punctuation",
			input: "¿Quieres ser mi San Valentín?",
			want:  "quieres-ser-mi-san-valentin",
		},
		{
			name:  "accents folded",
			input: "Canción de Amor Eterno",
			want:  "cancion-de-amor-eterno",
		},
		{
			name:  "enie folded to n",
			input: "Año Nuevo Juntos",
			want:  "ano-nuevo-juntos",
		},
		{
			name:  "punctuation stripped",
			input: "Hola, ¿cómo estás?",
			want:  "hola-como-estas",
		},
		{
			name:  "consecutive spaces collapse",
			input: "Ana   y   Luis",
			want:  "ana-y-luis",
		},
		{
			name:  "leading and trailing whitespace",
			input: "  Nuestra Historia  ",
			want:  "nuestra-historia",
		},
		{
			name:  "existing hyphens kept",
			input: "san-valentin-2026",
			want:  "san-valentin-2026",
		},
		{
			name:  "only punctuation yields empty",
			input: "¡¿?!",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

// 长标题截断后加上 "-N" 序号也要装进 varchar(50)
func TestSlugifyTruncatesLongInput(t *testing.T) {
	long := strings.Repeat("María y José para siempre ", 5)

	got := Slugify(long)
	assert.LessOrEqual(t, len(got), slugMaxLen)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasPrefix(got, "maria-y-jose"))

	// 截断点刚好落在连字符上时不留尾部连字符
	boundary := strings.Repeat("abcd-", 20)
	got = Slugify(boundary)
	assert.LessOrEqual(t, len(got), slugMaxLen)
	assert.False(t, strings.HasSuffix(got, "-"))
}
