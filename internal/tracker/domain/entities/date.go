package entities

import (
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// DateLayout - формат дат в ответах API, без времени.
const DateLayout = "Mon Jan 02 2006"

// ParseDate разбирает дату в любом распространенном формате.
// Значения без часового пояса считаются UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !strings.ContainsFunc(s, unicode.IsDigit) {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// FormatDate форматирует дату для ответа API.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DateBoundary - граница диапазона дат в фильтре журнала.
// Заданная, но невалидная граница не совпадает ни с одной датой.
type DateBoundary struct {
	Time  time.Time
	Set   bool
	Valid bool
}

// NewDateBoundary строит границу из параметра запроса. Пустая строка означает отсутствие границы.
func NewDateBoundary(raw string) DateBoundary {
	if raw == "" {
		return DateBoundary{}
	}
	t, ok := ParseDate(raw)
	return DateBoundary{Time: t, Set: true, Valid: ok}
}

// AtLeast сообщает, что t не раньше границы.
func (b DateBoundary) AtLeast(t time.Time) bool {
	if !b.Set {
		return true
	}
	return b.Valid && !t.Before(b.Time)
}

// AtMost сообщает, что t не позже границы.
func (b DateBoundary) AtMost(t time.Time) bool {
	if !b.Set {
		return true
	}
	return b.Valid && !t.After(b.Time)
}
