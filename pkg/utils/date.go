package utils

import (
	"fmt"
	"strings"
	"time"
)

const USDateLayout = "01/02/2006"

// NormalizeDate aceita YYYY-MM-DD ou RFC3339 e devolve a data de calendário
// no formato YYYY-MM-DD, descartando o horário.
func NormalizeDate(dateStr string) (string, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return "", fmt.Errorf("data vazia")
	}

	if date, err := time.Parse(time.DateOnly, dateStr); err == nil {
		return date.Format(time.DateOnly), nil
	}

	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return "", fmt.Errorf("data inválida %q: use YYYY-MM-DD", dateStr)
	}

	return date.Format(time.DateOnly), nil
}

// FormatUSDate converte YYYY-MM-DD para MM/DD/YYYY
func FormatUSDate(dateStr string) (string, error) {
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return "", err
	}
	return date.Format(USDateLayout), nil
}

// ParseUSDate aceita MM/DD/YYYY (ou YYYY-MM-DD) e devolve YYYY-MM-DD
func ParseUSDate(dateStr string) (string, error) {
	dateStr = strings.TrimSpace(dateStr)
	if date, err := time.Parse(USDateLayout, dateStr); err == nil {
		return date.Format(time.DateOnly), nil
	}
	return NormalizeDate(dateStr)
}
