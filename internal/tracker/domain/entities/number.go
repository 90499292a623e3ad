package entities

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseLeadingInt разбирает целое число в начале строки, игнорируя хвост
// ("45min" -> 45). Поддерживаются ведущие пробелы, знак и префикс 0x.
// Возвращает false, если в начале строки нет цифр. Слишком длинное число
// ограничивается значением math.MaxInt с соответствующим знаком.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], base, strconv.IntSize)
	if errors.Is(err, strconv.ErrRange) {
		return sign * math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return sign * int(n), true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && ((c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')):
		return true
	default:
		return false
	}
}
