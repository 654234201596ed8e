package utils

import (
	"fmt"
	"time"
)

// ParseDate aceita apenas datas no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q, use YYYY-MM-DD: %w", dateStr, err)
	}
	return date, nil
}

// LookbackRange devolve o intervalo [now-days, now] formatado como YYYY-MM-DD
func LookbackRange(now time.Time, days int) (from, to string) {
	return now.AddDate(0, 0, -days).Format(time.DateOnly), now.Format(time.DateOnly)
}
