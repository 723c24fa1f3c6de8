package utils

import (
	"unicode"
)

// Capitalize converts the first letter of a string to uppercase.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
