package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii untouched", "report.pdf", "report.pdf"},
		{"accent dropped keeping base letter", "tëst-file.txt", "test-file.txt"},
		{"multiple diacritics", "résumé-naïve.pdf", "resume-naive.pdf"},
		{"keeps underscore dash dot", "a_b-c.d", "a_b-c.d"},
		{"keeps whitespace", "my holiday photo.jpg", "my holiday photo.jpg"},
		{"already decomposed input", "café.txt", "cafe.txt"},
		{"strips emoji", "cat😀video.mp4", "catvideo.mp4"},
		{"strips cyrillic run", "отчёт-final.doc", "-final.doc"},
		{"mixed runs preserve order", "aあbいc", "abc"},
		{"all non-ascii yields empty", "日本語", ""},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.in))
		})
	}
}
