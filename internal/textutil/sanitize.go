package textutil

import (
	"strings"
	"unicode"
)

// fileNameReplacer maps characters that would break a quoted Path argument or
// escape the output directory.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName makes name safe to embed in a Screenshot command. Path
// separators, colons, and asterisks become dashes; quotes and other unsafe
// characters are removed, as are control characters.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, fileNameReplacer.Replace(name))
	return strings.Trim(strings.TrimSpace(name), ".")
}
