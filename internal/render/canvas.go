package render

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Canvas construye un Document acumulando primitivas posicionadas. Mantiene
// la fuente vigente para medir texto con las métricas reales del backend;
// la posición vertical no es estado del lienzo: cada paso de sección recibe
// y retorna su cursor de forma explícita.
type Canvas struct {
	doc     *Document
	page    *Page
	metrics *gofpdf.Fpdf
	tr      func(string) string

	size float64
	bold bool

	imageSeq int
}

// NewCanvas crea un lienzo vacío con una primera página
func NewCanvas() *Canvas {
	metrics := gofpdf.New("P", "pt", "Letter", "")
	metrics.AddPage()

	c := &Canvas{
		doc:     &Document{},
		metrics: metrics,
		tr:      metrics.UnicodeTranslatorFromDescriptor(""),
		size:    12,
	}
	c.page = c.doc.AddPage()
	c.applyFont()
	return c
}

func (c *Canvas) applyFont() {
	style := ""
	if c.bold {
		style = "B"
	}
	c.metrics.SetFont("Helvetica", style, c.size)
}

// Doc retorna el documento construido
func (c *Canvas) Doc() *Document {
	return c.doc
}

// SetFont fija la fuente vigente (Helvetica normal o negrita)
func (c *Canvas) SetFont(bold bool, size float64) {
	c.bold = bold
	c.size = size
	c.applyFont()
}

// WidthOf mide el ancho de un texto con la fuente vigente
func (c *Canvas) WidthOf(s string) float64 {
	return c.metrics.GetStringWidth(c.tr(s))
}

// LineHeight retorna la altura de línea de la fuente vigente
func (c *Canvas) LineHeight() float64 {
	return c.size * lineHeightFactor
}

// NewPage agrega una página y la vuelve la página actual
func (c *Canvas) NewPage() {
	c.page = c.doc.AddPage()
}

// PageCount retorna el número de páginas construidas
func (c *Canvas) PageCount() int {
	return len(c.doc.Pages)
}

// Rect traza el contorno de un rectángulo
func (c *Canvas) Rect(x, y, w, h float64) {
	c.page.Ops = append(c.page.Ops, RectOp{X: x, Y: y, W: w, H: h, Stroke: true})
}

// FillRect rellena un rectángulo con un gris (0-255) sin trazar el borde
func (c *Canvas) FillRect(x, y, w, h float64, gray int) {
	c.page.Ops = append(c.page.Ops, RectOp{X: x, Y: y, W: w, H: h, Fill: true, FillGray: gray})
}

// GrayCell rellena y bordea una celda gris claro
func (c *Canvas) GrayCell(x, y, w, h float64) {
	c.FillRect(x, y, w, h, 240)
	c.Rect(x, y, w, h)
}

// Line traza una línea de un punto de grosor
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.page.Ops = append(c.page.Ops, LineOp{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: 1})
}

// CrossCell marca una celda con una X trazando sus dos diagonales
func (c *Canvas) CrossCell(x, y, w, h float64) {
	c.Line(x, y, x+w, y+h)
	c.Line(x+w, y, x, y+h)
}

// Text dibuja una línea de texto en la posición dada con la fuente vigente
func (c *Canvas) Text(s string, x, y float64) {
	c.page.Ops = append(c.page.Ops, TextOp{Text: s, X: x, Y: y, Size: c.size, Bold: c.bold})
}

// TextBox dibuja texto dentro de una caja de ancho fijo, partiéndolo en
// líneas y alineando cada una. Retorna la posición vertical tras la última
// línea.
func (c *Canvas) TextBox(s string, x, y, w float64, align Align) float64 {
	return c.textBox(s, x, y, w, align, false)
}

// TextBoxUnderlined es TextBox con subrayado
func (c *Canvas) TextBoxUnderlined(s string, x, y, w float64, align Align) float64 {
	return c.textBox(s, x, y, w, align, true)
}

func (c *Canvas) textBox(s string, x, y, w float64, align Align, underline bool) float64 {
	for _, line := range c.wrapLine(s, w) {
		lineX := x
		switch align {
		case AlignCenter:
			lineX = x + (w-c.WidthOf(line))/2
		case AlignRight:
			lineX = x + w - c.WidthOf(line)
		}
		c.page.Ops = append(c.page.Ops, TextOp{
			Text: line, X: lineX, Y: y, Size: c.size, Bold: c.bold, Underline: underline,
		})
		y += c.LineHeight()
	}
	return y
}

// wrapLine parte un texto en líneas que caben en el ancho dado
func (c *Canvas) wrapLine(s string, w float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if c.WidthOf(candidate) > w {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// LabelValue es una escritura de continuación: etiqueta en negrita y valor
// normal sobre la misma línea base
func (c *Canvas) LabelValue(label, value string, x, y float64) {
	size := c.size
	c.SetFont(true, size)
	c.Text(label, x, y)
	labelWidth := c.WidthOf(label)
	c.SetFont(false, size)
	c.Text(value, x+labelWidth, y)
}

// TextCentered centra un texto dentro de una celda midiendo su ancho y la
// altura de línea: origen + (celda - texto) / 2 en ambos ejes
func (c *Canvas) TextCentered(s string, cellX, cellY, cellW, cellH float64) {
	textX := cellX + (cellW-c.WidthOf(s))/2
	textY := cellY + (cellH-c.LineHeight())/2
	c.Text(s, textX, textY)
}

// Image incrusta una imagen en la posición y tamaño dados
func (c *Canvas) Image(data []byte, format string, x, y, w, h float64) {
	c.imageSeq++
	c.page.Ops = append(c.page.Ops, ImageOp{
		Name:   fmt.Sprintf("img-%d", c.imageSeq),
		Format: format,
		Data:   data,
		X:      x, Y: y, W: w, H: h,
	})
}

// FlowSegment es un tramo de texto con estilo propio dentro de un párrafo
// de flujo continuo
type FlowSegment struct {
	Text string
	Bold bool
}

type flowRun struct {
	text string
	bold bool
}

// FlowParagraph dibuja un párrafo con ajuste de línea dentro del ancho dado,
// saltando de página al alcanzar el margen inferior. Retorna el cursor
// vertical donde continúa el flujo.
func (c *Canvas) FlowParagraph(segs []FlowSegment, x, y, w float64) float64 {
	size := c.size
	var line []flowRun
	var lineWidth float64

	flush := func() {
		if len(line) == 0 {
			return
		}
		if y > FlowBottom-c.LineHeight() {
			c.NewPage()
			y = FlowTop
		}
		runX := x
		for _, run := range line {
			c.SetFont(run.bold, size)
			c.Text(run.text, runX, y)
			runX += c.WidthOf(run.text)
		}
		y += size * lineHeightFactor
		line = nil
		lineWidth = 0
	}

	appendWord := func(word string, bold bool) {
		c.SetFont(bold, size)
		wordWidth := c.WidthOf(word)
		spacer := ""
		spacerWidth := 0.0
		if len(line) > 0 {
			spacer = " "
			spacerWidth = c.WidthOf(" ")
		}
		if len(line) > 0 && lineWidth+spacerWidth+wordWidth > w {
			flush()
			spacer = ""
			spacerWidth = 0
		}
		if len(line) > 0 && line[len(line)-1].bold == bold {
			line[len(line)-1].text += spacer + word
		} else {
			line = append(line, flowRun{text: spacer + word, bold: bold})
		}
		lineWidth += spacerWidth + wordWidth
	}

	for _, seg := range segs {
		for _, word := range strings.Fields(seg.Text) {
			appendWord(word, seg.Bold)
		}
	}
	flush()

	c.SetFont(false, size)
	return y
}
