package api

import (
	"fmt"
	"net/http"

	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CreateEquipment maneja POST /equipment. Los campos llegan como formulario
// multipart junto con las fotos (photo_0..photo_2) y la factura.
func (a *API) CreateEquipment(c *gin.Context) {
	var req models.CreateEquipmentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	photos, invoice, ok := a.readEquipmentFiles(c)
	if !ok {
		return
	}

	created, err := a.equipment.Create(&req, photos, invoice)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListEquipment maneja GET /equipment con filtros opcionales por técnico
// asignado y correo del cliente
func (a *API) ListEquipment(c *gin.Context) {
	items, err := a.equipment.GetAll(c.Query("technicianName"), c.Query("email"))
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetEquipment maneja GET /equipment/:id
func (a *API) GetEquipment(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	eq, err := a.equipment.GetByID(id)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, eq)
}

// GetEquipmentPhotos maneja GET /equipment/:id/photos
func (a *API) GetEquipmentPhotos(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	photos, err := a.equipment.GetPhotos(id)
	if err != nil {
		a.handleError(c, err)
		return
	}

	responses := make([]models.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		responses = append(responses, models.PhotoResponse{Buffer: photo})
	}
	c.JSON(http.StatusOK, responses)
}

// GetEquipmentInvoice maneja GET /equipment/:id/invoice
func (a *API) GetEquipmentInvoice(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	invoice, err := a.equipment.GetInvoice(id)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// UpdateEquipment maneja PUT /equipment/:id
func (a *API) UpdateEquipment(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	var req models.UpdateEquipmentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	photos, invoice, ok := a.readEquipmentFiles(c)
	if !ok {
		return
	}

	updated, err := a.equipment.Update(id, &req, photos, invoice)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdateCustomerApproval maneja PATCH /equipment/:id/customer-approval
func (a *API) UpdateCustomerApproval(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	var body struct {
		Approval string `json:"approval" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "approval", Issue: "Required"},
		}))
		return
	}

	updated, err := a.equipment.UpdateCustomerApproval(id, body.Approval)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// RemoveEquipmentPhoto maneja PATCH /equipment/:id/photo. El cuerpo trae la
// foto a eliminar codificada en Base64.
func (a *API) RemoveEquipmentPhoto(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	var body struct {
		PhotoURL string `json:"photoUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "photoUrl", Issue: "Required"},
		}))
		return
	}

	updated, err := a.equipment.RemovePhoto(id, body.PhotoURL)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Foto eliminada correctamente",
		"equipment": updated,
	})
}

// DeleteEquipment maneja DELETE /equipment/:id
func (a *API) DeleteEquipment(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	if err := a.equipment.Delete(id); err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted"})
}

// GenerateEquipmentPDF maneja GET /equipment/generate-pdf/:id
func (a *API) GenerateEquipmentPDF(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	resp, report, err := a.equipment.GeneratePDF(id)
	if err != nil {
		a.handleError(c, err)
		return
	}

	for _, warning := range report.Warnings {
		a.logger.WithField("equipment_id", id).Warn(warning)
	}

	c.JSON(http.StatusOK, resp)
}

// readEquipmentFiles lee las fotos y la factura del formulario multipart;
// escribe la respuesta de error cuando algún archivo no puede leerse
func (a *API) readEquipmentFiles(c *gin.Context) ([][]byte, []byte, bool) {
	var photos [][]byte
	for i := 0; i < models.MaxEquipmentPhotos; i++ {
		photo, err := readFormFile(c, fmt.Sprintf("photo_%d", i))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.NewValidationError("Could not read photo", []models.ErrorDetail{
				{Field: fmt.Sprintf("photo_%d", i), Issue: err.Error()},
			}))
			return nil, nil, false
		}
		if photo != nil {
			photos = append(photos, photo)
		}
	}

	invoice, err := readFormFile(c, "invoice")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Could not read invoice", []models.ErrorDetail{
			{Field: "invoice", Issue: err.Error()},
		}))
		return nil, nil, false
	}

	return photos, invoice, true
}
