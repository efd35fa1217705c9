package models

import (
	"time"

	"github.com/google/uuid"
)

// Event representa una entrada del calendario de servicio
type Event struct {
	ID        uuid.UUID `json:"_id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateEventRequest representa la petición de alta de un evento
type CreateEventRequest struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Type  string `json:"type" binding:"required"`
	Time  string `json:"time" binding:"required"`
}

// UpdateEventRequest representa la petición de actualización de un evento
type UpdateEventRequest struct {
	Title *string `json:"title,omitempty"`
	Date  *string `json:"date,omitempty"`
	Type  *string `json:"type,omitempty"`
	Time  *string `json:"time,omitempty"`
}
