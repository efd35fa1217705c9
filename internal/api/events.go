package api

import (
	"net/http"

	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CreateEvent maneja POST /events
func (a *API) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	created, err := a.events.Create(&req)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListEvents maneja GET /events
func (a *API) ListEvents(c *gin.Context) {
	events, err := a.events.GetAll()
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// SearchEvents maneja GET /events/search?criteria=...
func (a *API) SearchEvents(c *gin.Context) {
	criteria := c.Query("criteria")
	if criteria == "" {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Missing search criteria", []models.ErrorDetail{
			{Field: "criteria", Issue: "Required"},
		}))
		return
	}

	events, err := a.events.Search(criteria)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// UpdateEvent maneja PUT /events/:id
func (a *API) UpdateEvent(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	updated, err := a.events.Update(id, &req)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteEvent maneja DELETE /events/:id
func (a *API) DeleteEvent(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	if err := a.events.Delete(id); err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
