package utils

import "time"

// DateLayout é o formato de data dos períodos do changelog
const DateLayout = "2006-01-02"

// ParseDate interpreta AAAA-MM-DD; texto vazio devolve a data zero
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, dateStr)
}
