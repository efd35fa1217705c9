package render

import (
	"fmt"
	"strings"

	"github.com/diego410711/mbf-backend/internal/models"
)

// Geometría de la hoja de contrato: dos columnas sobre página carta con
// margen izquierdo de 35 pt; la columna izquierda ocupa el 30% del ancho
// útil y la derecha el 70%.
const (
	contractMarginX   = 35.0
	contractPageWidth = PageWidth - 100
	contractLeftCol   = contractPageWidth * 0.3
	contractRightCol  = contractPageWidth * 0.7
	contractLogoWidth = contractLeftCol - 10
	contractContentX  = contractMarginX + contractLeftCol + 30
)

const companyName = "IMPORTACIONES MEDIBÁSCULAS ZOMAC S.A.S"
const companyNIT = "NIT: 901.561.138-2"

type contractTerm struct {
	text string
	bold bool
}

// Cláusulas del contrato de servicio; el cuerpo de la tercera va en negrita
var contractTerms = []contractTerm{
	{text: "No nos hacemos responsables por fallas ocultas no declaradas por el cliente, presentes en el equipo que solo son identificadas en una revisión técnica exhaustiva."},
	{text: "La empresa no se hace responsable por equipos dejados en el taller, pasado los 30 días, perdiendo el cliente todo el derecho sobre el/los equipos en cuestión, y el equipo pasará a ser reciclado y desechado."},
	{text: "La garantía cubre solo la pieza reparada y/o reemplazada del equipo y será válida por 01 un mes desde la fecha de entrega siempre que este no tenga el sello de garantía alterado y con la presente hoja de servicio.", bold: true},
	{text: "Al cumplir 10 días hábiles de notificarle que su equipo está listo para ser retirado, se comenzará a cobrar 3% por día del precio del servicio prestado, por concepto de almacenaje hasta lo expresado en la cláusula 2."},
	{text: "La empresa no se hace responsable si durante el tiempo establecido en la cláusula 4 el equipo sufre daños o pérdidas en nuestras instalaciones por algún desastre de índole natural, inundaciones, terremotos, sismos, lluvia, incendios, hurtos, robos, causando estos el daño parcial o total en el equipo o la desaparición."},
	{text: "Las fallas reportadas por el cliente al momento de solicitar el servicio no son únicas ni absolutas y serán verificadas al momento de la revisión y las fallas encontradas serán notificadas al cliente para validar la reparación."},
	{text: "En caso de que una prueba de funcionamiento demuestre que el desperfecto no radica en el equipo, la empresa cobrará el valor vigente de la revisión."},
	{text: "La empresa dará un presupuesto con el valor del servicio, sin que ello constituya compromiso alguno, y se le notificará al cliente, quien dentro de los (03) tres días hábiles siguientes debe autorizar o no el servicio y quedará escrito en esta hoja con la respectiva fecha."},
	{text: "La empresa cobrará el valor de revisión si el cliente no aprueba el servicio de reparación."},
	{text: "La empresa no recibirá el equipo por garantía cuando el lapso de esta haya culminado y sin presentar esta hoja donde está expuesto el repuesto y/o falla reparada."},
	{text: "La garantía no cubre cuando el equipo es reparado, revisado o manipulado por un tercero y/o haya sido adaptado o conectado algún equipo o accesorio ajeno a su modelo de fabricación."},
}

// RenderEquipmentContract genera la hoja de contrato de servicio de un
// equipo. Retorna los bytes completos del PDF junto al reporte de fotos y
// recursos, o un RenderError terminal; nunca salida parcial.
func (e *Engine) RenderEquipmentContract(eq *models.Equipment) ([]byte, *Report, error) {
	doc, report := e.BuildEquipmentContract(eq)

	data, err := e.renderer.Render(doc)
	if err != nil {
		return nil, nil, err
	}

	return data, report, nil
}

// BuildEquipmentContract construye la descripción declarativa del contrato.
// Expuesto por separado para poder verificar la geometría sin decodificar
// PDF.
func (e *Engine) BuildEquipmentContract(eq *models.Equipment) (*Document, *Report) {
	c := NewCanvas()
	report := &Report{}

	e.drawContractLeftColumn(c, report, eq)

	// Línea divisoria entre columnas
	lineX := contractMarginX + contractLeftCol + 5
	c.Line(lineX, 40, lineX, PageHeight-50)

	e.drawContractRightColumn(c, report, eq)

	return c.Doc(), report
}

// drawContractLeftColumn dibuja marca, aprobación del cliente, fechas y
// datos de contacto de la columna izquierda
func (e *Engine) drawContractLeftColumn(c *Canvas, report *Report, eq *models.Equipment) {
	e.placeAsset(c, report, ContractLogoAsset, contractMarginX, 50, contractLogoWidth, contractLogoWidth)

	// El bloque de texto arranca debajo del logo (cuadrado: alto = ancho)
	textY := 50 + contractLogoWidth + 10

	c.SetFont(true, 12)
	c.TextBox(companyName, contractMarginX-30, textY, contractLeftCol+30, AlignCenter)

	c.SetFont(false, 10)
	c.TextBox(companyNIT, contractMarginX, textY+30, contractLogoWidth, AlignCenter)
	c.TextBox("RESPONSABLE DE IVA", contractMarginX, textY+45, contractLogoWidth, AlignCenter)
	c.TextBox("APROBACION DEL CLIENTE:", contractMarginX, textY+80, contractLogoWidth, AlignCenter)

	// Celdas SI / NO: la celda que coincide con la aprobación registrada se
	// marca con una X. La comparación es contra los literales exactos
	// "Sí" (acentuado) y "No"; cualquier otro valor no marca ninguna.
	cellWidth, cellHeight := 40.0, 20.0
	cellY := textY + 100
	offsetX := 20.0

	approval := ""
	if eq.CustomerApproval != nil {
		approval = *eq.CustomerApproval
	}

	siX := contractMarginX + 10 + offsetX
	c.Rect(siX, cellY, cellWidth, cellHeight)
	c.TextBox("SI", siX, cellY+5, cellWidth, AlignCenter)
	if approval == "Sí" {
		c.CrossCell(siX, cellY, cellWidth, cellHeight)
	}

	noX := contractMarginX + cellWidth + 10 + offsetX
	c.Rect(noX, cellY, cellWidth, cellHeight)
	c.TextBox("NO", noX, cellY+5, cellWidth, AlignCenter)
	if approval == "No" {
		c.CrossCell(noX, cellY, cellWidth, cellHeight)
	}

	c.TextBox("FECHA AUTORIZACIÓN: ", contractMarginX+12, cellY+35, cellWidth+80, AlignCenter)

	// Celdas de fecha con el texto centrado midiendo ancho y altura de línea
	dateCellX := contractMarginX + 18
	c.Rect(dateCellX, cellY+50, 100, 30)
	c.TextCentered(FormatShortDate(eq.AuthorizationDate), dateCellX, cellY+50, 100, 30)

	c.TextBox("FECHA ENTREGA AL CLIENTE: ", contractMarginX+12, cellY+105, cellWidth+80, AlignCenter)

	c.Rect(dateCellX, cellY+135, 100, 30)
	c.TextCentered(FormatShortDate(eq.DeliveryDate), dateCellX, cellY+135, 100, 30)

	c.SetFont(false, 8)
	contactLines := []struct {
		text    string
		offsetY float64
	}{
		{"Tel: +57 304 130 1189", 390},
		{"info@medibasculas.com", 401},
		{"Cra 45D #60-72, Medellin Colombia", 412},
		{"+57 304 130 1189", 449},
		{"serviciotecnico@medibasculas.com", 460},
		{"http://www.medibasculas.com/", 471},
	}
	for _, line := range contactLines {
		c.TextBox(line.text, contractMarginX, textY+line.offsetY, contractLogoWidth, AlignLeft)
	}
}

// drawContractRightColumn dibuja encabezado, datos de cliente y equipo,
// fotos, diagnóstico, términos y bloque de firma
func (e *Engine) drawContractRightColumn(c *Canvas, report *Report, eq *models.Equipment) {
	contentX := contractContentX
	contentY := 50.0

	c.SetFont(true, 12)
	now := e.Now()
	c.LabelValue("FECHA DE INGRESO: ", FormatShortDate(&now), contentX, contentY+8)

	// Caja de recepción con consecutivo
	boxX, boxY := 450.0, contentY-5
	boxWidth, boxHeight := 120.0, 40.0
	c.Rect(boxX, boxY, boxWidth, boxHeight)
	c.Line(boxX, boxY+20, boxX+boxWidth, boxY+20)
	c.SetFont(true, 10)
	c.TextBox("RECEPCIÓN EQUIPO", boxX, boxY+5, boxWidth, AlignCenter)
	c.SetFont(true, 12)
	c.TextBox("RE-0496", boxX, boxY+25, boxWidth, AlignCenter)

	contentY += 75

	// Título centrado con subrayado manual del ancho exacto del texto
	title := "HOJA DE CONTRATO DE SERVICIO: "
	c.SetFont(true, 12)
	c.TextBox(title, contentX, contentY, contractRightCol, AlignCenter)
	titleWidth := c.WidthOf(title)
	centerX := contentX + (contractRightCol-titleWidth)/2
	underlineY := contentY + c.LineHeight() + 2
	c.Line(centerX, underlineY, centerX+titleWidth, underlineY)

	contentY += 40

	c.SetFont(true, 14)
	c.TextBoxUnderlined("DATOS DEL CLIENTE", contentX, contentY, contractRightCol, AlignLeft)
	contentY += 20

	c.LabelValue("NOMBRE: ", ptrOr(eq.Company, FallbackUnavailable), contentX, contentY)
	contentY += 15
	c.LabelValue("C.C / NIT: ", ptrOr(eq.Doc, FallbackUnavailable), contentX, contentY)
	contentY += 15
	c.LabelValue("EMAIL: ", ptrOr(eq.Email, FallbackUnavailable), contentX, contentY)
	contentY += 15
	c.LabelValue("DIRECCIÓN: ", ptrOr(eq.Address, FallbackUnavailable), contentX, contentY)
	contentY += 15
	c.LabelValue("TEL/CEL: ", ptrOr(eq.Phone, FallbackUnavailable), contentX, contentY)
	contentY += 15
	c.LabelValue("CONTACTO: ", contactName(eq), contentX, contentY)
	contentY += 30

	c.SetFont(true, 14)
	c.TextBoxUnderlined("DATOS DEL EQUIPO", contentX, contentY, contractRightCol, AlignLeft)
	contentY += 20

	c.SetFont(true, 12)
	c.LabelValue("EQUIPO: ", strOr(eq.Name, FallbackUnavailable), contentX, contentY)
	contentY += 15
	c.LabelValue("MARCA: ", strOr(eq.Brand, FallbackUnavailable), contentX, contentY)
	contentY += 15
	c.LabelValue("MODELO: ", strOr(eq.Model, FallbackUnavailable), contentX, contentY)
	contentY += 15
	c.LabelValue("SERIAL: ", ptrOr(eq.Serial, FallbackSerial), contentX, contentY)
	contentY += 15
	c.LabelValue("ACCESORIOS: ", ptrOr(eq.Accessories, FallbackUnavailable), contentX, contentY)
	contentY += 15
	c.LabelValue("DEFECTOS: ", strOr(eq.Issue, FallbackUnspecified), contentX, contentY)
	contentY += 30

	c.SetFont(true, 14)
	c.TextBoxUnderlined("FICHA TÉCNICA", contentX, contentY, contractRightCol, AlignLeft)
	contentY += 20

	c.SetFont(true, 12)
	c.LabelValue("FALLA REPORTADA POR EL CLIENTE: ", strOr(eq.Issue, FallbackUnspecified), contentX, contentY)
	contentY += 30

	c.SetFont(true, 14)
	c.TextBoxUnderlined("DIAGNÓSTICO TÉCNICO", contentX, contentY, contractRightCol, AlignLeft)
	contentY += 20

	contentY = e.drawContractPhotos(c, report, eq, contentX, contentY)

	c.SetFont(true, 12)
	c.LabelValue("DIAGNÓSTICO: ", ptrOr(eq.Diagnosis, FallbackDiagnosis), contentX, contentY)
	contentY += 30

	c.SetFont(true, 14)
	c.TextBoxUnderlined("TÉRMINOS Y CONDICIONES DE SERVICIO", contentX, contentY, contractRightCol, AlignLeft)
	contentY += 20

	c.SetFont(false, 10)
	intro := "PARA LOS EFECTOS DE CONVENIO ENTIÉNDASE LA EMPRESA IMPORTACIONES MEDIBÁSCULAS ZOMAC S.A.S como prestador del servicio; y como cliente a quien firma la presente. EL CLIENTE acepta y convenio expresamente lo siguiente: "
	flowY := c.FlowParagraph([]FlowSegment{{Text: intro}}, contentX, contentY, contractRightCol)

	for i, term := range contractTerms {
		flowY = c.FlowParagraph([]FlowSegment{
			{Text: fmt.Sprintf("%d. ", i+1), Bold: true},
			{Text: term.text, Bold: term.bold},
		}, contentX, flowY, contractRightCol)
	}

	// El bloque de firma se posiciona respecto al cursor de sección previo
	// a los términos, sobre la página donde terminó el flujo
	contentY -= 120

	c.SetFont(true, 10)
	c.TextBox("He leído y acepto los términos y condiciones:", contentX, contentY, contractRightCol, AlignLeft)
	contentY += 60

	c.SetFont(false, 12)
	c.Text("Firma del cliente: ____________________________", contentX, contentY)
	contentY += 20
	c.Text("Atentamente: ", contentX, contentY)
	contentY += 20
	c.Text(companyName, contentX, contentY)
	contentY += 20
	c.Text(companyNIT, contentX, contentY)
}

// drawContractPhotos coloca las fotos del equipo como miniaturas de 100x50.
// Una foto corrupta o demasiado pequeña se omite sin afectar las siguientes;
// si la próxima miniatura no cabe, se agrega página y el cursor vuelve al
// margen superior.
func (e *Engine) drawContractPhotos(c *Canvas, report *Report, eq *models.Equipment, contentX, contentY float64) float64 {
	const (
		imageWidth  = 100.0
		imageHeight = 50.0
		margin      = 50.0
	)

	for i, photo := range eq.Photos {
		raw, err := NormalizePhoto(photo)
		if err != nil {
			report.addPhoto(i, false, ReasonDecodeFailure)
			if e.logger != nil {
				e.logger.WithError(err).WithField("photo_index", i).Warn("Skipping undecodable photo")
			}
			continue
		}

		if len(raw) < MinPhotoBytes {
			report.addPhoto(i, false, ReasonTooSmall)
			if e.logger != nil {
				e.logger.WithField("photo_index", i).WithField("bytes", len(raw)).Warn("Skipping implausibly small photo")
			}
			continue
		}

		format, err := DetectImageFormat(raw)
		if err != nil {
			report.addPhoto(i, false, ReasonDecodeFailure)
			if e.logger != nil {
				e.logger.WithError(err).WithField("photo_index", i).Warn("Skipping photo with unknown format")
			}
			continue
		}

		if contentY+imageHeight+margin > PageHeight {
			c.NewPage()
			contentY = margin
		}

		c.Image(raw, format, contentX, contentY, imageWidth, imageHeight)
		contentY += imageHeight + 10
		report.addPhoto(i, true, "")
	}

	return contentY
}

// contactName arma el nombre de contacto a partir de nombre y apellido
func contactName(eq *models.Equipment) string {
	first, last := "", ""
	if eq.Firstname != nil {
		first = *eq.Firstname
	}
	if eq.Lastname != nil {
		last = *eq.Lastname
	}
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return FallbackUnavailable
	}
	return name
}
