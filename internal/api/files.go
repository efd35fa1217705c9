package api

import (
	"fmt"
	"net/http"

	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// DownloadContract descarga el contrato PDF persistido de un equipo
func (a *API) DownloadContract(c *gin.Context) {
	a.downloadDocument(c, models.DocumentKindContract)
}

// DownloadSheet descarga la ficha técnica PDF persistida de un activo
func (a *API) DownloadSheet(c *gin.Context) {
	a.downloadDocument(c, models.DocumentKindSheet)
}

func (a *API) downloadDocument(c *gin.Context, kind models.DocumentKind) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	file, err := a.storage.GetDocument(id, kind)
	if err != nil {
		a.handleError(c, err)
		return
	}

	fileName := fmt.Sprintf("%s-%s.pdf", kind, id)
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", fileName))
	c.Header("Content-Length", fmt.Sprintf("%d", len(file.PDFData)))

	c.Data(http.StatusOK, "application/pdf", file.PDFData)
}
