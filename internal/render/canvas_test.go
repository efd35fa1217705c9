package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextBoxWrapsToWidth(t *testing.T) {
	c := NewCanvas()
	c.SetFont(false, 10)

	text := strings.Repeat("palabra ", 40)
	endY := c.TextBox(text, 50, 100, 200, AlignLeft)

	texts := c.Doc().Pages[0].Texts()
	require.Greater(t, len(texts), 1, "el texto debe partirse en varias líneas")

	for _, op := range texts {
		assert.LessOrEqual(t, c.WidthOf(op.Text), 200.0)
	}

	// El cursor avanza una altura de línea por línea escrita
	assert.Equal(t, 100+float64(len(texts))*c.LineHeight(), endY)
}

func TestTextBoxCenterAlignment(t *testing.T) {
	c := NewCanvas()
	c.SetFont(false, 10)

	c.TextBox("centrado", 100, 50, 300, AlignCenter)

	op := c.Doc().Pages[0].Texts()[0]
	assert.InDelta(t, 100+(300-c.WidthOf("centrado"))/2, op.X, 0.001)
}

func TestLabelValueStyles(t *testing.T) {
	c := NewCanvas()
	c.SetFont(true, 12)
	c.LabelValue("MARCA: ", "Mettler", 60, 200)

	texts := c.Doc().Pages[0].Texts()
	require.Len(t, texts, 2)

	assert.True(t, texts[0].Bold)
	assert.False(t, texts[1].Bold)
	// El valor continúa donde termina la etiqueta
	c.SetFont(true, 12)
	assert.InDelta(t, 60+c.WidthOf("MARCA: "), texts[1].X, 0.001)
}

func TestFlowParagraphBreaksPage(t *testing.T) {
	c := NewCanvas()
	c.SetFont(false, 10)

	text := strings.Repeat("cláusula extensa del contrato de servicio ", 20)
	endY := c.FlowParagraph([]FlowSegment{{Text: text}}, 72, FlowBottom-20, 400)

	assert.Equal(t, 2, c.PageCount())
	// El flujo continúa desde el margen superior de la página nueva
	assert.Greater(t, endY, FlowTop)
	assert.Less(t, endY, FlowBottom)
}

func TestFlowParagraphMergesRunsOfSameStyle(t *testing.T) {
	c := NewCanvas()
	c.SetFont(false, 10)

	c.FlowParagraph([]FlowSegment{
		{Text: "3. ", Bold: true},
		{Text: "La garantía cubre solo la pieza reparada", Bold: true},
	}, 72, 100, 400)

	texts := c.Doc().Pages[0].Texts()
	require.Len(t, texts, 1, "tramos contiguos del mismo estilo se funden")
	assert.True(t, texts[0].Bold)
}
