package render

import (
	"strings"

	"github.com/diego410711/mbf-backend/internal/models"
)

// Geometría de la ficha técnica: encabezado bordeado de 520x75 con celda
// de logo gris, grilla de datos generales 2x3, fila eléctrica, bloque de
// especificaciones y selectores de tecnología y uso.
const (
	sheetHeaderX      = 50.0
	sheetHeaderY      = 30.0
	sheetHeaderWidth  = 520.0
	sheetHeaderHeight = 75.0
	sheetLogoCell     = 130.0
	sheetLogoSize     = 60.0
)

// Etiquetas del selector de tecnología, en orden de dibujo. La celda se
// marca cuando el valor del registro coincide con la etiqueta sin tildes.
var technologyLabels = []string{"Mecánico", "Eléctrico", "Hidráulico", "Electrónico", "Neumático"}

// RenderInventorySheet genera la ficha técnica de un activo de inventario.
// Misma política de fallas que el contrato: recursos ausentes se reportan y
// el documento se completa; solo el flujo de bytes produce error.
func (e *Engine) RenderInventorySheet(inv *models.Inventory) ([]byte, *Report, error) {
	doc, report := e.BuildInventorySheet(inv)

	data, err := e.renderer.Render(doc)
	if err != nil {
		return nil, nil, err
	}

	return data, report, nil
}

// BuildInventorySheet construye la descripción declarativa de la ficha
func (e *Engine) BuildInventorySheet(inv *models.Inventory) (*Document, *Report) {
	c := NewCanvas()
	report := &Report{}

	e.drawSheetHeader(c, report, inv)
	e.drawSheetGeneralData(c, inv)
	e.drawSheetElectricalRow(c, inv)
	e.drawSheetSpecifications(c, inv)

	return c.Doc(), report
}

// drawSheetHeader dibuja el marco superior: celda gris con logo, líneas de
// contacto centradas y la grilla derecha de etiqueta/valor
func (e *Engine) drawSheetHeader(c *Canvas, report *Report, inv *models.Inventory) {
	c.Rect(sheetHeaderX, sheetHeaderY, sheetHeaderWidth, sheetHeaderHeight)

	c.GrayCell(sheetHeaderX, sheetHeaderY, sheetLogoCell, sheetHeaderHeight)

	logoX := sheetHeaderX + (sheetLogoCell-sheetLogoSize)/2
	logoY := sheetHeaderY + (sheetHeaderHeight-sheetLogoSize)/2
	e.placeAsset(c, report, SheetLogoAsset, logoX, logoY, sheetLogoSize, sheetLogoSize)

	c.SetFont(true, 8)
	c.TextBox("IMPORTACIONES MEDIBÁSCULAS ZOMAC S.A.S.", 43, 40, 500, AlignCenter)
	c.SetFont(false, 8)
	c.TextBox("Whatsapp 304 1301189", 40, 55, 500, AlignCenter)
	c.TextBox("serviciotecnico@medibasculas.com", 40, 70, 500, AlignCenter)
	c.TextBox("CRA 45D #60-72, Medellín, Antioquia", 40, 85, 500, AlignCenter)

	// Grilla derecha: pares de celdas etiqueta gris / valor blanco
	const (
		cellHeight = 18.5
		labelWidth = 100.0
		valueWidth = 65.0
		startX     = 405.0
	)
	startY := 30.0

	drawCell := func(label, value string, y float64) {
		c.FillRect(startX, y, labelWidth, cellHeight, 240)
		c.FillRect(startX+labelWidth, y, valueWidth, cellHeight, 255)
		c.Rect(startX, y, labelWidth, cellHeight)
		c.Rect(startX+labelWidth, y, valueWidth, cellHeight)

		c.SetFont(true, 8)
		c.TextBox(label, startX+5, y+7, labelWidth-10, AlignCenter)
		c.SetFont(false, 8)
		c.TextBox(value, startX+labelWidth+5, y+7, valueWidth-10, AlignCenter)
	}

	drawCell("FICHA TÉCNICA:", ptrOr(inv.FT, "FT-145"), startY)
	startY += cellHeight
	drawCell("FECHA SERVICIO:", "23/11/2023", startY)
	startY += cellHeight
	drawCell("PRÓXIMO SERVICIO:", "23/05/2024", startY)
	startY += cellHeight
	drawCell("PRIORIDAD:", strings.ToUpper(inv.MaintenancePriority), startY)
}

// drawSheetGeneralData dibuja la grilla 2x3 de datos generales con el texto
// centrado en cada celda
func (e *Engine) drawSheetGeneralData(c *Canvas, inv *models.Inventory) {
	const (
		startY      = 120.0
		cellHeight  = 20.0
		columnWidth = 130.0
		startX      = 51.0
		offsetX     = 130.0
	)

	generalData := [][2]string{
		{"Nombre del Equipo", strOr(inv.Name, FallbackUnavailable)},
		{"Marca", strOr(inv.Brand, FallbackUnavailable)},
		{"Modelo", strOr(inv.Model, FallbackUnavailable)},
		{"Serie", strOr(inv.SerialNumber, FallbackUnavailable)},
		{"Fecha de Compra", FormatLongDate(inv.PurchaseDate)},
		{"Ubicación", strOr(inv.Location, FallbackUnavailable)},
	}

	c.SetFont(false, 8)
	for i, row := range generalData {
		col := i % 2
		rowNumber := float64(i / 2)

		// La segunda columna de pares se corre un ancho de celda adicional
		extraOffset := 0.0
		if col == 1 {
			extraOffset = offsetX
		}

		x := startX + float64(col)*columnWidth + extraOffset
		y := startY + rowNumber*cellHeight

		c.GrayCell(x, y, columnWidth, cellHeight)
		c.Rect(x+columnWidth, y, columnWidth, cellHeight)

		textY := y + (cellHeight-6)/2
		c.SetFont(true, 8)
		c.Text(row[0], x+(columnWidth-c.WidthOf(row[0]))/2, textY)
		c.SetFont(false, 8)
		c.Text(row[1], x+columnWidth+(columnWidth-c.WidthOf(row[1]))/2, textY)
	}
}

// drawSheetElectricalRow dibuja la fila de voltaje, peso y potencia; la
// última celda de dato es más ancha
func (e *Engine) drawSheetElectricalRow(c *Canvas, inv *models.Inventory) {
	const (
		startX     = 51.0
		y          = 200.0
		titleWidth = 116.0
		dataWidth  = 53.0
		wideWidth  = 65.0
		cellHeight = 20.0
	)

	cells := []struct {
		text  string
		title bool
		width float64
	}{
		{"Voltaje del Equipo", true, titleWidth},
		{ptrOr(inv.Voltage, FallbackUnavailable), false, dataWidth},
		{"Peso del Equipo", true, titleWidth},
		{ptrOr(inv.Weight, FallbackUnavailable), false, dataWidth},
		{"Potencia del Equipo", true, titleWidth},
		{ptrOr(inv.Power, FallbackUnavailable), false, wideWidth},
	}

	x := startX
	for _, cell := range cells {
		if cell.title {
			c.FillRect(x, y, cell.width, cellHeight, 240)
		}
		c.Rect(x, y, cell.width, cellHeight)
		c.SetFont(cell.title, 8)
		c.TextBox(cell.text, x, y+cellHeight/3, cell.width, AlignCenter)
		x += cell.width
	}
}

// drawSheetSpecifications dibuja el encabezado de especificaciones, las
// filas de capacidad y material, la celda de dimensiones y los selectores
// de tecnología y uso
func (e *Engine) drawSheetSpecifications(c *Canvas, inv *models.Inventory) {
	containerY := 237.0
	const (
		headerHeight = 25.0
		startX       = 50.0
		cellHeight   = 20.0
	)
	columnWidths := []float64{150, 300, 70}

	// Encabezado de tres celdas grises
	headers := []string{"Especificaciones Técnicas", "Tecnología Predominante", "Uso"}
	x := startX
	c.SetFont(true, 8)
	for i, header := range headers {
		c.GrayCell(x, containerY, columnWidths[i], headerHeight)
		c.TextBox(header, x+5, containerY+9, columnWidths[i]-10, AlignCenter)
		x += columnWidths[i]
	}

	// Filas de capacidad y material
	specifications := [][2]string{
		{"Capacidad", ptrOr(inv.Capacity, FallbackUnavailable)},
		{"Material", ptrOr(inv.Material, FallbackUnavailable)},
	}
	const specCellWidth = 75.0
	for _, row := range specifications {
		rowY := containerY + cellHeight + 4
		c.GrayCell(startX, rowY, specCellWidth, cellHeight)
		c.Rect(startX+specCellWidth, rowY, specCellWidth, cellHeight)

		textY := containerY + (cellHeight-6)/2 + cellHeight + 4
		c.SetFont(true, 8)
		c.Text(row[0], startX+(specCellWidth-c.WidthOf(row[0]))/2, textY)
		c.SetFont(false, 8)
		c.Text(row[1], startX+specCellWidth+(specCellWidth-c.WidthOf(row[1]))/2, textY)

		containerY += cellHeight
	}

	// Celda de dimensiones con su valor de placa
	dimensionsY := containerY + 4
	c.GrayCell(200, dimensionsY, 150, cellHeight)
	c.SetFont(true, 8)
	c.Text("Dimensiones del equipo", 200+(150-c.WidthOf("Dimensiones del equipo"))/2, dimensionsY+(cellHeight-5)/2)

	c.Rect(350, dimensionsY, 150, cellHeight)
	c.SetFont(false, 8)
	c.Text("40x30x10cm", 350+(150-c.WidthOf("40x30x10cm"))/2, dimensionsY+(cellHeight-5)/2)

	// Selector de tecnología: cinco celdas, X en la que coincide con el
	// valor del registro comparando la etiqueta sin tildes
	selectorY := containerY - 16
	c.SetFont(false, 8)
	for i, label := range technologyLabels {
		cellX := 200 + float64(i)*60
		c.Rect(cellX, selectorY, 60, cellHeight)
		c.Text(label, cellX+(60-c.WidthOf(label))/2, selectorY+(18-c.LineHeight())/2)

		if inv.Technology == stripAccents(label) {
			c.CrossCell(cellX, selectorY, 60, cellHeight)
		}
	}

	// Selector de uso Fijo / Móvil
	const (
		usageX      = 500.0
		usageWidth  = 35.0
		usageHeight = 39.0
	)
	usageY := selectorY

	c.Rect(usageX, usageY+1, usageWidth, usageHeight)
	if inv.Usage == "Fijo" {
		c.CrossCell(usageX, usageY, usageWidth, usageHeight)
	}
	c.TextBox("Fijo", usageX+5, usageY+17, usageWidth-10, AlignCenter)

	c.Rect(usageX+usageWidth, usageY+1, usageWidth, usageHeight)
	c.TextBox("Móvil", usageX+usageWidth+5, usageY+17, usageWidth-10, AlignCenter)
	if inv.Usage == "Movil" {
		c.CrossCell(usageX+usageWidth, usageY, usageWidth, usageHeight)
	}
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U",
)

// stripAccents quita las tildes de una etiqueta para compararla con los
// valores del enumerado
func stripAccents(s string) string {
	return accentReplacer.Replace(s)
}
