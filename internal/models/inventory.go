package models

import (
	"time"

	"github.com/google/uuid"
)

// Valores permitidos para los campos enumerados del inventario
var (
	UsageValues      = []string{"Fijo", "Movil"}
	TechnologyValues = []string{"Mecanico", "Electrico", "Hidraulico", "Electronico", "Neumatico"}
	PriorityValues   = []string{"Baja", "Media", "Alta"}
)

// Inventory representa un activo del registro de inventario
type Inventory struct {
	ID                  uuid.UUID  `json:"_id"`
	Name                string     `json:"name"`
	Brand               string     `json:"brand"`
	Model               string     `json:"model"`
	SerialNumber        string     `json:"serialNumber"`
	Location            string     `json:"location"`
	PurchaseDate        *time.Time `json:"purchaseDate,omitempty"`
	Voltage             *string    `json:"voltage,omitempty"`
	Power               *string    `json:"power,omitempty"`
	Weight              *string    `json:"weight,omitempty"`
	Capacity            *string    `json:"capacity,omitempty"`
	Material            *string    `json:"material,omitempty"`
	Usage               string     `json:"usage"`
	Technology          string     `json:"technology"`
	MaintenancePriority string     `json:"maintenancePriority"`
	FT                  *string    `json:"FT,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// CreateInventoryRequest representa la petición de alta de un activo
type CreateInventoryRequest struct {
	Name                string  `json:"name" binding:"required"`
	Brand               string  `json:"brand" binding:"required"`
	Model               string  `json:"model" binding:"required"`
	SerialNumber        string  `json:"serialNumber" binding:"required"`
	Location            string  `json:"location" binding:"required"`
	PurchaseDate        string  `json:"purchaseDate"`
	Voltage             *string `json:"voltage,omitempty"`
	Power               *string `json:"power,omitempty"`
	Weight              *string `json:"weight,omitempty"`
	Capacity            *string `json:"capacity,omitempty"`
	Material            *string `json:"material,omitempty"`
	Usage               string  `json:"usage" binding:"required"`
	Technology          string  `json:"technology" binding:"required"`
	MaintenancePriority string  `json:"maintenancePriority" binding:"required"`
	FT                  *string `json:"FT,omitempty"`
}

// UpdateInventoryRequest representa la petición de actualización de un activo
type UpdateInventoryRequest struct {
	Name                *string `json:"name,omitempty"`
	Brand               *string `json:"brand,omitempty"`
	Model               *string `json:"model,omitempty"`
	SerialNumber        *string `json:"serialNumber,omitempty"`
	Location            *string `json:"location,omitempty"`
	PurchaseDate        *string `json:"purchaseDate,omitempty"`
	Voltage             *string `json:"voltage,omitempty"`
	Power               *string `json:"power,omitempty"`
	Weight              *string `json:"weight,omitempty"`
	Capacity            *string `json:"capacity,omitempty"`
	Material            *string `json:"material,omitempty"`
	Usage               *string `json:"usage,omitempty"`
	Technology          *string `json:"technology,omitempty"`
	MaintenancePriority *string `json:"maintenancePriority,omitempty"`
	FT                  *string `json:"FT,omitempty"`
}

// ValidateEnums verifica los campos enumerados y retorna los detalles de error
func (r *CreateInventoryRequest) ValidateEnums() []ErrorDetail {
	var details []ErrorDetail
	if !containsValue(UsageValues, r.Usage) {
		details = append(details, ErrorDetail{Field: "usage", Issue: "Must be one of: Fijo, Movil"})
	}
	if !containsValue(TechnologyValues, r.Technology) {
		details = append(details, ErrorDetail{Field: "technology", Issue: "Must be one of: Mecanico, Electrico, Hidraulico, Electronico, Neumatico"})
	}
	if !containsValue(PriorityValues, r.MaintenancePriority) {
		details = append(details, ErrorDetail{Field: "maintenancePriority", Issue: "Must be one of: Baja, Media, Alta"})
	}
	return details
}

// ValidateEnums verifica los campos enumerados presentes en la actualización
func (r *UpdateInventoryRequest) ValidateEnums() []ErrorDetail {
	var details []ErrorDetail
	if r.Usage != nil && !containsValue(UsageValues, *r.Usage) {
		details = append(details, ErrorDetail{Field: "usage", Issue: "Must be one of: Fijo, Movil"})
	}
	if r.Technology != nil && !containsValue(TechnologyValues, *r.Technology) {
		details = append(details, ErrorDetail{Field: "technology", Issue: "Must be one of: Mecanico, Electrico, Hidraulico, Electronico, Neumatico"})
	}
	if r.MaintenancePriority != nil && !containsValue(PriorityValues, *r.MaintenancePriority) {
		details = append(details, ErrorDetail{Field: "maintenancePriority", Issue: "Must be one of: Baja, Media, Alta"})
	}
	return details
}

func containsValue(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
