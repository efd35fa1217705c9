package render

import (
	"fmt"
	"time"
)

// Textos de relleno cuando falta un valor
const (
	FallbackUnavailable = "No disponible"
	FallbackUnspecified = "No especificado"
	FallbackSerial      = "N/A"
	FallbackDiagnosis   = "Pendiente de revisión."
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatShortDate formatea una fecha como d/m/aaaa (formato corto es-ES).
// Una fecha ausente se muestra como "No disponible".
func FormatShortDate(t *time.Time) string {
	if t == nil {
		return FallbackUnavailable
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// FormatLongDate formatea una fecha como "02 de enero de 2006" (formato
// largo es-CO). Una fecha ausente se muestra como "No disponible".
func FormatLongDate(t *time.Time) string {
	if t == nil {
		return FallbackUnavailable
	}
	return fmt.Sprintf("%02d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// parseDate acepta los formatos de fecha que envía el frontend
func parseDate(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02 15:04:05",
		"02/01/2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// ParseDate expone el análisis de fechas para la capa de servicios
func ParseDate(s string) (time.Time, error) {
	return parseDate(s)
}
