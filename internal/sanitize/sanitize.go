// Package sanitize cleans uploaded filenames for use as storage object keys
// and URL path segments.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Filename reduces name to printable ASCII, whitespace, '_', '-' and '.',
// preserving the relative order of the runes it keeps. Accented letters are
// decomposed first so their ASCII base survives ("ë" becomes "e"); runes with
// no ASCII base are removed outright. It never fails; the result may be empty.
func Filename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '_' || r == '-' || r == '.':
			return r
		case unicode.IsSpace(r):
			return r
		case r >= 0x20 && r <= 0x7e:
			return r
		}
		return -1
	}, norm.NFD.String(name))
}
