package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
)

// Fecha de creación fijada en los metadatos del PDF: con entradas idénticas
// la salida debe ser idéntica byte a byte
var pinnedCreationDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Renderer serializa un Document a bytes PDF mediante gofpdf
type Renderer struct {
	logger *logrus.Logger
}

// NewRenderer crea una nueva instancia del serializador
func NewRenderer(logger *logrus.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render reproduce las operaciones del documento página por página y
// retorna el PDF completo, o un RenderError si el flujo de bytes falla
func (r *Renderer) Render(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(pinnedCreationDate)
	pdf.SetFont("Helvetica", "", 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			r.drawOp(pdf, tr, op)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, &RenderError{Stage: "draw", Err: err}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Stage: "output", Err: err}
	}

	return buf.Bytes(), nil
}

func (r *Renderer) drawOp(pdf *gofpdf.Fpdf, tr func(string) string, op interface{}) {
	switch o := op.(type) {
	case RectOp:
		if o.Fill {
			pdf.SetFillColor(o.FillGray, o.FillGray, o.FillGray)
			pdf.Rect(o.X, o.Y, o.W, o.H, "F")
		}
		if o.Stroke {
			pdf.Rect(o.X, o.Y, o.W, o.H, "D")
		}
	case LineOp:
		pdf.SetLineWidth(o.Width)
		pdf.Line(o.X1, o.Y1, o.X2, o.Y2)
	case TextOp:
		style := ""
		if o.Bold {
			style += "B"
		}
		if o.Underline {
			style += "U"
		}
		pdf.SetFont("Helvetica", style, o.Size)
		// La Y de la operación es el tope de la línea; gofpdf posiciona
		// por línea base
		pdf.Text(o.X, o.Y+o.Size*0.85, tr(o.Text))
	case ImageOp:
		opts := gofpdf.ImageOptions{ImageType: o.Format, ReadDpi: false}
		pdf.RegisterImageOptionsReader(o.Name, opts, bytes.NewReader(o.Data))
		pdf.ImageOptions(o.Name, o.X, o.Y, o.W, o.H, false, opts, 0, "")
	default:
		if r.logger != nil {
			r.logger.Warn(fmt.Sprintf("unknown draw op %T", op))
		}
	}
}
