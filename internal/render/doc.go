// Package render implementa el motor de maquetación de documentos: a partir
// de un registro (equipo o activo de inventario) produce una descripción
// declarativa de páginas con primitivas posicionadas (rectángulos, líneas,
// texto e imágenes) en coordenadas absolutas de punto tipográfico, y la
// serializa a PDF mediante gofpdf. La geometría reproduce exactamente la
// plantilla impresa de los formatos de taller.
package render

// Dimensiones de página carta en puntos y márgenes de flujo de texto
const (
	PageWidth  = 612.0
	PageHeight = 792.0
	FlowTop    = 72.0
	FlowBottom = 720.0
)

// Factor de altura de línea respecto al tamaño de fuente
const lineHeightFactor = 1.15

// Align indica la alineación horizontal de un texto dentro de su caja
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// RectOp dibuja un rectángulo. Si Fill está activo se rellena con FillGray
// (escala 0-255) antes de trazar el borde; con Stroke se traza el contorno.
type RectOp struct {
	X, Y, W, H float64
	Fill       bool
	FillGray   int
	Stroke     bool
}

// LineOp dibuja una línea recta entre dos puntos
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

// TextOp dibuja una línea de texto ya posicionada. X e Y son la esquina
// superior izquierda de la línea; la alineación se resuelve al construir
// la operación, no al serializarla.
type TextOp struct {
	Text      string
	X, Y      float64
	Size      float64
	Bold      bool
	Underline bool
}

// ImageOp incrusta una imagen rasterizada. Format es "PNG" o "JPG" y Name
// identifica los bytes de forma única dentro del documento.
type ImageOp struct {
	Name       string
	Format     string
	Data       []byte
	X, Y, W, H float64
}

// Page es la secuencia ordenada de operaciones de una página
type Page struct {
	Ops []interface{}
}

// Document es la descripción completa de un documento paginado
type Document struct {
	Pages []*Page
}

// AddPage agrega una página vacía y la retorna
func (d *Document) AddPage() *Page {
	page := &Page{}
	d.Pages = append(d.Pages, page)
	return page
}

// Texts retorna las operaciones de texto de la página, en orden de dibujo
func (p *Page) Texts() []TextOp {
	var texts []TextOp
	for _, op := range p.Ops {
		if t, ok := op.(TextOp); ok {
			texts = append(texts, t)
		}
	}
	return texts
}

// Lines retorna las operaciones de línea de la página, en orden de dibujo
func (p *Page) Lines() []LineOp {
	var lines []LineOp
	for _, op := range p.Ops {
		if l, ok := op.(LineOp); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// Images retorna las operaciones de imagen de la página, en orden de dibujo
func (p *Page) Images() []ImageOp {
	var images []ImageOp
	for _, op := range p.Ops {
		if i, ok := op.(ImageOp); ok {
			images = append(images, i)
		}
	}
	return images
}
