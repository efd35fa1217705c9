package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// La grilla de selectores arranca bajo las filas de capacidad y material
const testSelectorY = 237.0 + 2*20 - 16

func testInventory() *models.Inventory {
	purchase := time.Date(2022, time.June, 15, 0, 0, 0, 0, time.UTC)
	return &models.Inventory{
		Name:                "Báscula de piso",
		Brand:               "Mettler",
		Model:               "IND231",
		SerialNumber:        "SN-8841",
		Location:            "Bodega 2",
		PurchaseDate:        &purchase,
		Voltage:             strPtr("110V"),
		Power:               strPtr("40W"),
		Weight:              strPtr("12kg"),
		Capacity:            strPtr("300kg"),
		Material:            strPtr("Acero"),
		Usage:               "Fijo",
		Technology:          "Mecanico",
		MaintenancePriority: "Alta",
	}
}

func TestSheetTechnologySelector(t *testing.T) {
	cases := []struct {
		technology string
		markedCell int
	}{
		{"Mecanico", 0},
		{"Electrico", 1},
		{"Hidraulico", 2},
		{"Electronico", 3},
		{"Neumatico", 4},
	}

	engine := newTestEngine(t)
	for _, tc := range cases {
		t.Run(tc.technology, func(t *testing.T) {
			inv := testInventory()
			inv.Technology = tc.technology

			doc, _ := engine.BuildInventorySheet(inv)
			page := doc.Pages[0]

			for i := range technologyLabels {
				cellX := 200 + float64(i)*60
				marked := hasCross(page, cellX, testSelectorY, 60, 20)
				assert.Equal(t, i == tc.markedCell, marked, "celda %d", i)
			}
		})
	}
}

func TestSheetUsageSelector(t *testing.T) {
	engine := newTestEngine(t)

	inv := testInventory()
	inv.Usage = "Fijo"
	doc, _ := engine.BuildInventorySheet(inv)
	page := doc.Pages[0]
	assert.True(t, hasCross(page, 500, testSelectorY, 35, 39))
	assert.False(t, hasCross(page, 535, testSelectorY, 35, 39))

	inv.Usage = "Movil"
	doc, _ = engine.BuildInventorySheet(inv)
	page = doc.Pages[0]
	assert.False(t, hasCross(page, 500, testSelectorY, 35, 39))
	assert.True(t, hasCross(page, 535, testSelectorY, 35, 39))
}

func TestSheetHeaderCells(t *testing.T) {
	engine := newTestEngine(t)

	inv := testInventory()
	doc, _ := engine.BuildInventorySheet(inv)
	page := doc.Pages[0]

	// Sin código FT propio se imprime el de la plantilla
	assert.True(t, hasText(page, "FT-145"))
	assert.True(t, hasText(page, "23/11/2023"))
	assert.True(t, hasText(page, "23/05/2024"))
	// La prioridad se imprime en mayúsculas
	assert.True(t, hasText(page, "ALTA"))

	inv.FT = strPtr("FT-031")
	doc, _ = engine.BuildInventorySheet(inv)
	page = doc.Pages[0]
	assert.True(t, hasText(page, "FT-031"))
	assert.False(t, hasText(page, "FT-145"))
}

func TestSheetBodyValues(t *testing.T) {
	engine := newTestEngine(t)
	doc, _ := engine.BuildInventorySheet(testInventory())
	page := doc.Pages[0]

	assert.True(t, hasText(page, "Báscula de piso"))
	assert.True(t, hasText(page, "15 de junio de 2022"))
	assert.True(t, hasText(page, "110V"))
	assert.True(t, hasText(page, "300kg"))
	// Dimensiones de placa de la plantilla
	assert.True(t, hasText(page, "40x30x10cm"))

	// El cuerpo entero va en tamaño 8
	name, ok := findText(page, "Báscula de piso")
	require.True(t, ok)
	assert.Equal(t, 8.0, name.Size)
}

func TestSheetMissingValues(t *testing.T) {
	engine := newTestEngine(t)
	inv := testInventory()
	inv.Voltage = nil
	inv.Capacity = nil
	inv.PurchaseDate = nil

	doc, _ := engine.BuildInventorySheet(inv)
	assert.True(t, hasText(doc.Pages[0], "No disponible"))
}

func TestRenderInventorySheetDeterministic(t *testing.T) {
	engine := newTestEngine(t)
	inv := testInventory()

	first, _, err := engine.RenderInventorySheet(inv)
	require.NoError(t, err)
	second, _, err := engine.RenderInventorySheet(inv)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(first, []byte("%PDF")))
	assert.Equal(t, first, second)
}
