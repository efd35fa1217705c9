package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Nombres de los recursos de marca que usan las plantillas
const (
	ContractLogoAsset = "logo1.png"
	SheetLogoAsset    = "logo.png"
)

// Engine es el motor de maquetación: construye el documento declarativo de
// cada plantilla y lo serializa. El reloj es inyectable para que la fecha de
// ingreso sea reproducible en pruebas.
type Engine struct {
	assetsDir string
	logger    *logrus.Logger
	renderer  *Renderer

	// Now provee la fecha actual; reemplazable en pruebas
	Now func() time.Time
}

// NewEngine crea un motor con el directorio de recursos de marca dado
func NewEngine(assetsDir string, logger *logrus.Logger) *Engine {
	return &Engine{
		assetsDir: assetsDir,
		logger:    logger,
		renderer:  NewRenderer(logger),
		Now:       time.Now,
	}
}

// loadAsset lee un recurso de marca y detecta su formato. Su ausencia es
// recuperable: el llamador continúa sin la imagen.
func (e *Engine) loadAsset(name string) ([]byte, string, error) {
	data, err := os.ReadFile(filepath.Join(e.assetsDir, name))
	if err != nil {
		return nil, "", fmt.Errorf("error reading asset %s: %w", name, err)
	}

	format, err := DetectImageFormat(data)
	if err != nil {
		return nil, "", fmt.Errorf("error detecting asset format %s: %w", name, err)
	}

	return data, format, nil
}

// placeAsset incrusta un recurso de marca si está disponible; si no, lo
// registra en el reporte y el documento continúa sin él
func (e *Engine) placeAsset(c *Canvas, report *Report, name string, x, y, w, h float64) {
	data, format, err := e.loadAsset(name)
	if err != nil {
		report.addWarning("%s: %s", ReasonAssetMissing, name)
		if e.logger != nil {
			e.logger.WithError(err).WithField("asset", name).Warn("Branding asset unavailable, rendering without it")
		}
		return
	}
	c.Image(data, format, x, y, w, h)
}

func strOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func ptrOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
