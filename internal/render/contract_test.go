package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Geometría derivada de las constantes de la plantilla, usada para ubicar
// las celdas de aprobación en las verificaciones
const (
	testContractTextY = 50 + contractLogoWidth + 10
	testApprovalCellY = testContractTextY + 100
	testSiCellX       = contractMarginX + 10 + 20
	testNoCellX       = contractMarginX + 40 + 10 + 20
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine := NewEngine(t.TempDir(), nil)
	engine.Now = func() time.Time {
		return time.Date(2021, time.January, 2, 15, 4, 5, 0, time.UTC)
	}
	return engine
}

func strPtr(s string) *string {
	return &s
}

// hasCross verifica que la celda tenga trazadas sus dos diagonales
func hasCross(p *Page, x, y, w, h float64) bool {
	var down, up bool
	for _, l := range p.Lines() {
		if l.X1 == x && l.Y1 == y && l.X2 == x+w && l.Y2 == y+h {
			down = true
		}
		if l.X1 == x+w && l.Y1 == y && l.X2 == x && l.Y2 == y+h {
			up = true
		}
	}
	return down && up
}

func hasText(p *Page, s string) bool {
	for _, op := range p.Texts() {
		if op.Text == s {
			return true
		}
	}
	return false
}

func findText(p *Page, s string) (TextOp, bool) {
	for _, op := range p.Texts() {
		if op.Text == s {
			return op, true
		}
	}
	return TextOp{}, false
}

func TestContractApprovalMarks(t *testing.T) {
	cases := []struct {
		name     string
		approval *string
		siMarked bool
		noMarked bool
	}{
		{"aprobado con tilde", strPtr("Sí"), true, false},
		{"rechazado", strPtr("No"), false, true},
		{"sin tilde no marca", strPtr("Si"), false, false},
		{"valor libre no marca", strPtr("Aprobado"), false, false},
		{"sin registro", nil, false, false},
	}

	engine := newTestEngine(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eq := &models.Equipment{Name: "Báscula", CustomerApproval: tc.approval}
			doc, _ := engine.BuildEquipmentContract(eq)
			page := doc.Pages[0]

			assert.Equal(t, tc.siMarked, hasCross(page, testSiCellX, testApprovalCellY, 40, 20), "celda SI")
			assert.Equal(t, tc.noMarked, hasCross(page, testNoCellX, testApprovalCellY, 40, 20), "celda NO")
		})
	}
}

func TestContractFallbacks(t *testing.T) {
	engine := newTestEngine(t)
	doc, _ := engine.BuildEquipmentContract(&models.Equipment{})
	page := doc.Pages[0]

	// Serial ausente
	assert.True(t, hasText(page, "N/A"))
	// Diagnóstico ausente
	assert.True(t, hasText(page, "Pendiente de revisión."))
	// Defectos ausentes
	assert.True(t, hasText(page, "No especificado"))
	// Datos de cliente ausentes
	assert.True(t, hasText(page, "No disponible"))
}

func TestContractFieldSizes(t *testing.T) {
	engine := newTestEngine(t)
	doc, _ := engine.BuildEquipmentContract(&models.Equipment{
		Name:    "Báscula",
		Company: strPtr("ACME S.A.S"),
	})
	page := doc.Pages[0]

	// Los campos del cliente heredan el tamaño del título de su sección;
	// los del equipo vuelven a 12
	customer, ok := findText(page, "NOMBRE: ")
	require.True(t, ok)
	assert.Equal(t, 14.0, customer.Size)
	assert.True(t, customer.Bold)

	equipment, ok := findText(page, "EQUIPO: ")
	require.True(t, ok)
	assert.Equal(t, 12.0, equipment.Size)
}

func TestContractHeaderLiterals(t *testing.T) {
	engine := newTestEngine(t)
	doc, _ := engine.BuildEquipmentContract(&models.Equipment{Name: "Báscula"})
	page := doc.Pages[0]

	assert.True(t, hasText(page, "RECEPCIÓN EQUIPO"))
	assert.True(t, hasText(page, "RE-0496"))
	assert.True(t, hasText(page, "HOJA DE CONTRATO DE SERVICIO: "))
	assert.True(t, hasText(page, companyName))
}

func TestContractIngressDateUsesClock(t *testing.T) {
	engine := newTestEngine(t)
	doc, _ := engine.BuildEquipmentContract(&models.Equipment{Name: "Báscula"})

	assert.True(t, hasText(doc.Pages[0], "2/1/2021"))
}

func TestContractPhotoHandling(t *testing.T) {
	engine := newTestEngine(t)

	photos := [][]byte{
		fakeImage([]byte{0x89, 0x50, 0x4E, 0x47}, 600), // válida
		fakeImage([]byte{0x89, 0x50, 0x4E, 0x47}, 120), // demasiado pequeña
		[]byte("!!!esto no es base64!!!"),               // indecodificable
	}

	doc, report := engine.BuildEquipmentContract(&models.Equipment{
		Name:   "Báscula",
		Photos: photos,
	})

	require.Len(t, report.Photos, 3)
	assert.True(t, report.Photos[0].Rendered)
	assert.False(t, report.Photos[1].Rendered)
	assert.Equal(t, ReasonTooSmall, report.Photos[1].Reason)
	assert.False(t, report.Photos[2].Rendered)
	assert.Equal(t, ReasonDecodeFailure, report.Photos[2].Reason)

	assert.Equal(t, 1, report.RenderedCount())
	assert.Equal(t, 2, report.SkippedCount())

	// Sin logo en el directorio de recursos, la única imagen es la foto válida
	assert.Len(t, doc.Pages[0].Images(), 1)
}

func TestContractMissingLogoIsReported(t *testing.T) {
	engine := newTestEngine(t)
	doc, report := engine.BuildEquipmentContract(&models.Equipment{Name: "Báscula"})

	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], ReasonAssetMissing)
	assert.Contains(t, report.Warnings[0], ContractLogoAsset)

	// El documento se completa sin la imagen
	assert.NotEmpty(t, doc.Pages[0].Texts())
	assert.Empty(t, doc.Pages[0].Images())
}

func TestRenderEquipmentContractDeterministic(t *testing.T) {
	engine := newTestEngine(t)
	eq := &models.Equipment{
		Name:      "Báscula camionera",
		Brand:     "Mettler",
		Model:     "XK-3190",
		Issue:     "No enciende",
		Firstname: strPtr("Ana"),
		Lastname:  strPtr("Gómez"),
	}

	first, _, err := engine.RenderEquipmentContract(eq)
	require.NoError(t, err)
	second, _, err := engine.RenderEquipmentContract(eq)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(first, []byte("%PDF")))
	assert.Equal(t, first, second, "misma entrada, mismos bytes")
}
