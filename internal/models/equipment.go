package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxEquipmentPhotos es la cantidad máxima de fotos por equipo
const MaxEquipmentPhotos = 3

// Valores de aprobación del cliente. El campo es texto libre en la práctica:
// el frontend envía "Sí"/"No" y el flujo de aprobación usa "Aprobado".
const (
	ApprovalApproved = "Aprobado"
	ApprovalRejected = "Rechazado"
	ApprovalPending  = "Pendiente"
)

// Equipment representa un equipo recibido para reparación
type Equipment struct {
	ID                 uuid.UUID  `json:"_id"`
	Name               string     `json:"name"`
	Brand              string     `json:"brand"`
	Model              string     `json:"model"`
	Serial             *string    `json:"serial,omitempty"`
	Issue              string     `json:"issue"`
	Photos             [][]byte   `json:"-"`
	Invoice            []byte     `json:"-"`
	AssignedTechnician *string    `json:"assignedTechnician,omitempty"`
	Diagnosis          *string    `json:"diagnosis,omitempty"`
	CustomerApproval   *string    `json:"customerApproval,omitempty"`
	AuthorizationDate  *time.Time `json:"authorizationDate,omitempty"`
	DeliveryDate       *time.Time `json:"deliveryDate,omitempty"`
	Accessories        *string    `json:"accessories,omitempty"`
	Firstname          *string    `json:"firstname,omitempty"`
	Lastname           *string    `json:"lastname,omitempty"`
	Email              *string    `json:"email,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	Address            *string    `json:"address,omitempty"`
	UserID             *string    `json:"userId,omitempty"`
	Doc                *string    `json:"doc,omitempty"`
	Company            *string    `json:"company,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// EquipmentResponse es la representación de un equipo en las respuestas JSON.
// La factura viaja en Base64; las fotos se sirven por su endpoint propio.
type EquipmentResponse struct {
	Equipment
	InvoiceBase64 *string `json:"invoice"`
}

// CreateEquipmentRequest representa los campos de formulario del alta de equipo.
// Las fotos (photo_0..photo_2) y la factura llegan como archivos multipart.
type CreateEquipmentRequest struct {
	Name               string `form:"name" binding:"required"`
	Brand              string `form:"brand" binding:"required"`
	Model              string `form:"model" binding:"required"`
	Serial             string `form:"serial"`
	Issue              string `form:"issue" binding:"required"`
	AssignedTechnician string `form:"assignedTechnician"`
	Diagnosis          string `form:"diagnosis"`
	CustomerApproval   string `form:"customerApproval"`
	AuthorizationDate  string `form:"authorizationDate"`
	DeliveryDate       string `form:"deliveryDate"`
	Accessories        string `form:"accessories"`
	Firstname          string `form:"firstname"`
	Lastname           string `form:"lastname"`
	Email              string `form:"email"`
	Phone              string `form:"phone"`
	Address            string `form:"address"`
	UserID             string `form:"userId"`
	Doc                string `form:"doc"`
	Company            string `form:"company"`
}

// UpdateEquipmentRequest representa los campos de formulario de la actualización.
// Todos son opcionales; los archivos reemplazan a los existentes cuando llegan.
type UpdateEquipmentRequest struct {
	Name               *string `form:"name"`
	Brand              *string `form:"brand"`
	Model              *string `form:"model"`
	Serial             *string `form:"serial"`
	Issue              *string `form:"issue"`
	AssignedTechnician *string `form:"assignedTechnician"`
	Diagnosis          *string `form:"diagnosis"`
	CustomerApproval   *string `form:"customerApproval"`
	AuthorizationDate  *string `form:"authorizationDate"`
	DeliveryDate       *string `form:"deliveryDate"`
	Accessories        *string `form:"accessories"`
	Firstname          *string `form:"firstname"`
	Lastname           *string `form:"lastname"`
	Email              *string `form:"email"`
	Phone              *string `form:"phone"`
	Address            *string `form:"address"`
	UserID             *string `form:"userId"`
	Doc                *string `form:"doc"`
	Company            *string `form:"company"`
}

// PhotoResponse representa una foto servida en Base64
type PhotoResponse struct {
	Buffer string `json:"buffer"`
}

// PDFResponse representa el sobre JSON de un documento generado
type PDFResponse struct {
	Message string `json:"message"`
	Base64  string `json:"base64"`
}
