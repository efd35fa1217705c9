package render

import "fmt"

// Motivos por los que un elemento visual opcional se omite del documento
const (
	ReasonAssetMissing  = "asset_missing"
	ReasonDecodeFailure = "image_decode_failure"
	ReasonTooSmall      = "image_too_small"
)

// PhotoOutcome es el resultado de procesar una foto incrustada: se dibujó
// o se omitió con un motivo, sin abortar el documento
type PhotoOutcome struct {
	Index    int    `json:"index"`
	Rendered bool   `json:"rendered"`
	Reason   string `json:"reason,omitempty"`
}

// Report acumula los resultados por foto y las advertencias de recursos
// estáticos de una pasada de render
type Report struct {
	Photos   []PhotoOutcome `json:"photos,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
}

func (r *Report) addPhoto(index int, rendered bool, reason string) {
	r.Photos = append(r.Photos, PhotoOutcome{Index: index, Rendered: rendered, Reason: reason})
}

func (r *Report) addWarning(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// RenderedCount retorna cuántas fotos se dibujaron
func (r *Report) RenderedCount() int {
	count := 0
	for _, p := range r.Photos {
		if p.Rendered {
			count++
		}
	}
	return count
}

// SkippedCount retorna cuántas fotos se omitieron
func (r *Report) SkippedCount() int {
	return len(r.Photos) - r.RenderedCount()
}

// RenderError indica una falla terminal en la construcción del documento.
// Las fallas locales a un elemento opcional no producen RenderError; solo
// las del flujo de bytes subyacente.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed at %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
