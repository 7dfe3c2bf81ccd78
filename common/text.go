package common

import "strings"

// Wrap breaks s into lines no longer than width runes, splitting on spaces.
// Words longer than width are kept whole on their own line.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineLen := 0
	for _, word := range words {
		n := len([]rune(word))
		if lineLen > 0 && lineLen+1+n > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += n
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
