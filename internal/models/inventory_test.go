package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInventoryRequestValidateEnums(t *testing.T) {
	req := &CreateInventoryRequest{
		Usage:               "Fijo",
		Technology:          "Mecanico",
		MaintenancePriority: "Alta",
	}
	assert.Empty(t, req.ValidateEnums())

	req = &CreateInventoryRequest{
		Usage:               "Portátil",
		Technology:          "Mecánico", // con tilde no es un valor del enumerado
		MaintenancePriority: "Urgente",
	}
	details := req.ValidateEnums()
	require.Len(t, details, 3)

	fields := []string{details[0].Field, details[1].Field, details[2].Field}
	assert.Contains(t, fields, "usage")
	assert.Contains(t, fields, "technology")
	assert.Contains(t, fields, "maintenancePriority")
}

func TestUpdateInventoryRequestValidateEnums(t *testing.T) {
	// Campos ausentes no se validan
	req := &UpdateInventoryRequest{}
	assert.Empty(t, req.ValidateEnums())

	usage := "Movil"
	req = &UpdateInventoryRequest{Usage: &usage}
	assert.Empty(t, req.ValidateEnums())

	bad := "Estacionario"
	req = &UpdateInventoryRequest{Usage: &bad}
	details := req.ValidateEnums()
	require.Len(t, details, 1)
	assert.Equal(t, "usage", details[0].Field)
}
