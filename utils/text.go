package utils

import (
	"strings"
	"unicode"
)

// Slugify lowercases the title and collapses every non-alphanumeric run into
// a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

const wordsPerMinute = 200

// ReadTime estimates reading time in whole minutes, never below one.
func ReadTime(body string) int {
	words := len(strings.Fields(body))
	minutes := words / wordsPerMinute
	if words%wordsPerMinute != 0 || minutes == 0 {
		minutes++
	}
	return minutes
}
