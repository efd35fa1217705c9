package api

import (
	"net/http"

	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CreateInventory maneja POST /inventory
func (a *API) CreateInventory(c *gin.Context) {
	var req models.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	if details := req.ValidateEnums(); len(details) > 0 {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid enum values", details))
		return
	}

	created, err := a.inventory.Create(&req)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListInventory maneja GET /inventory
func (a *API) ListInventory(c *gin.Context) {
	items, err := a.inventory.GetAll()
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetInventory maneja GET /inventory/:id
func (a *API) GetInventory(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	inv, err := a.inventory.GetByID(id)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, inv)
}

// UpdateInventory maneja PUT /inventory/:id
func (a *API) UpdateInventory(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	var req models.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	if details := req.ValidateEnums(); len(details) > 0 {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid enum values", details))
		return
	}

	updated, err := a.inventory.Update(id, &req)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteInventory maneja DELETE /inventory/:id
func (a *API) DeleteInventory(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	if err := a.inventory.Delete(id); err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}

// GenerateInventoryPDF maneja GET /inventory/generate-pdf/:id
func (a *API) GenerateInventoryPDF(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	resp, report, err := a.inventory.GeneratePDF(id)
	if err != nil {
		a.handleError(c, err)
		return
	}

	for _, warning := range report.Warnings {
		a.logger.WithField("inventory_id", id).Warn(warning)
	}

	c.JSON(http.StatusOK, resp)
}

// GetInventoryQR maneja GET /inventory/:id/qr y responde la imagen PNG
func (a *API) GetInventoryQR(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	png, err := a.inventory.GenerateQR(id)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
