package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/diego410711/mbf-backend/internal/database"
	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/diego410711/mbf-backend/internal/render"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Errores de negocio del flujo de equipos
var (
	ErrTooManyPhotos = errors.New("too many photos")
	ErrPhotoNotFound = errors.New("photo not found")
)

// EquipmentService implementa el flujo de recepción de equipos y la
// generación de su hoja de contrato
type EquipmentService struct {
	repo    *database.EquipmentRepository
	engine  *render.Engine
	storage *StorageService
	logger  *logrus.Logger
}

// NewEquipmentService crea una nueva instancia del servicio de equipos
func NewEquipmentService(repo *database.EquipmentRepository, engine *render.Engine, storage *StorageService, logger *logrus.Logger) *EquipmentService {
	return &EquipmentService{
		repo:    repo,
		engine:  engine,
		storage: storage,
		logger:  logger,
	}
}

// Create registra un equipo recibido con sus fotos y factura
func (s *EquipmentService) Create(req *models.CreateEquipmentRequest, photos [][]byte, invoice []byte) (*models.Equipment, error) {
	if len(photos) > models.MaxEquipmentPhotos {
		return nil, ErrTooManyPhotos
	}

	authorizationDate, err := optionalDate(req.AuthorizationDate)
	if err != nil {
		return nil, fmt.Errorf("invalid authorizationDate: %w", err)
	}
	deliveryDate, err := optionalDate(req.DeliveryDate)
	if err != nil {
		return nil, fmt.Errorf("invalid deliveryDate: %w", err)
	}

	eq := &models.Equipment{
		Name:               req.Name,
		Brand:              req.Brand,
		Model:              req.Model,
		Serial:             optStr(req.Serial),
		Issue:              req.Issue,
		Photos:             photos,
		Invoice:            invoice,
		AssignedTechnician: optStr(req.AssignedTechnician),
		Diagnosis:          optStr(req.Diagnosis),
		CustomerApproval:   optStr(req.CustomerApproval),
		AuthorizationDate:  authorizationDate,
		DeliveryDate:       deliveryDate,
		Accessories:        optStr(req.Accessories),
		Firstname:          optStr(req.Firstname),
		Lastname:           optStr(req.Lastname),
		Email:              optStr(req.Email),
		Phone:              optStr(req.Phone),
		Address:            optStr(req.Address),
		UserID:             optStr(req.UserID),
		Doc:                optStr(req.Doc),
		Company:            optStr(req.Company),
	}

	created, err := s.repo.Create(eq)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"equipment_id": created.ID,
		"name":         created.Name,
		"photos":       len(photos),
	}).Info("Equipment created")

	return created, nil
}

// GetAll lista los equipos con filtros opcionales por técnico asignado y
// correo del cliente; la factura viaja en Base64
func (s *EquipmentService) GetAll(technicianName, email string) ([]models.EquipmentResponse, error) {
	items, err := s.repo.GetAll(technicianName, email)
	if err != nil {
		return nil, err
	}

	responses := make([]models.EquipmentResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toEquipmentResponse(item))
	}
	return responses, nil
}

// GetByID obtiene un equipo
func (s *EquipmentService) GetByID(id uuid.UUID) (*models.Equipment, error) {
	return s.repo.GetByID(id)
}

// GetPhotos retorna las fotos de un equipo codificadas en Base64
func (s *EquipmentService) GetPhotos(id uuid.UUID) ([]string, error) {
	eq, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if len(eq.Photos) == 0 {
		return nil, fmt.Errorf("photos not found for equipment %s: %w", id, database.ErrNotFound)
	}

	photos := make([]string, 0, len(eq.Photos))
	for _, photo := range eq.Photos {
		photos = append(photos, base64.StdEncoding.EncodeToString(photo))
	}
	return photos, nil
}

// GetInvoice retorna la factura de un equipo codificada en Base64
func (s *EquipmentService) GetInvoice(id uuid.UUID) (string, error) {
	eq, err := s.repo.GetByID(id)
	if err != nil {
		return "", err
	}

	if len(eq.Invoice) == 0 {
		return "", fmt.Errorf("invoice not found for equipment %s: %w", id, database.ErrNotFound)
	}

	return base64.StdEncoding.EncodeToString(eq.Invoice), nil
}

// Update modifica un equipo; las fotos y la factura se reemplazan por
// completo cuando llegan archivos nuevos
func (s *EquipmentService) Update(id uuid.UUID, req *models.UpdateEquipmentRequest, photos [][]byte, invoice []byte) (*models.Equipment, error) {
	if len(photos) > models.MaxEquipmentPhotos {
		return nil, ErrTooManyPhotos
	}

	var authorizationDate, deliveryDate *time.Time
	if req.AuthorizationDate != nil && *req.AuthorizationDate != "" {
		parsed, err := render.ParseDate(*req.AuthorizationDate)
		if err != nil {
			return nil, fmt.Errorf("invalid authorizationDate: %w", err)
		}
		authorizationDate = &parsed
	}
	if req.DeliveryDate != nil && *req.DeliveryDate != "" {
		parsed, err := render.ParseDate(*req.DeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("invalid deliveryDate: %w", err)
		}
		deliveryDate = &parsed
	}

	return s.repo.Update(id, req, photos, invoice, authorizationDate, deliveryDate)
}

// UpdateCustomerApproval registra la decisión del cliente; la aprobación
// fija además la fecha de autorización al momento actual
func (s *EquipmentService) UpdateCustomerApproval(id uuid.UUID, approval string) (*models.Equipment, error) {
	var authorizationDate *time.Time
	if approval == models.ApprovalApproved {
		now := time.Now()
		authorizationDate = &now
	}

	updated, err := s.repo.UpdateCustomerApproval(id, approval, authorizationDate)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"equipment_id": id,
		"approval":     approval,
	}).Info("Customer approval updated")

	return updated, nil
}

// RemovePhoto elimina la foto cuyo contenido Base64 coincide con photoURL
func (s *EquipmentService) RemovePhoto(id uuid.UUID, photoURL string) (*models.Equipment, error) {
	eq, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if len(eq.Photos) == 0 {
		return nil, fmt.Errorf("equipment %s has no photos: %w", id, database.ErrNotFound)
	}

	remaining := make([][]byte, 0, len(eq.Photos))
	for _, photo := range eq.Photos {
		if base64.StdEncoding.EncodeToString(photo) != photoURL {
			remaining = append(remaining, photo)
		}
	}

	if len(remaining) == len(eq.Photos) {
		return nil, ErrPhotoNotFound
	}

	return s.repo.UpdatePhotos(id, remaining)
}

// Delete elimina un equipo y sus documentos generados
func (s *EquipmentService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if s.storage != nil {
		if err := s.storage.DeleteDocuments(id); err != nil {
			s.logger.WithError(err).WithField("equipment_id", id).Warn("Could not delete generated documents")
		}
	}

	return nil
}

// GeneratePDF produce la hoja de contrato del equipo, la archiva y la
// retorna en Base64
func (s *EquipmentService) GeneratePDF(id uuid.UUID) (*models.PDFResponse, *render.Report, error) {
	eq, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	pdfData, report, err := s.engine.RenderEquipmentContract(eq)
	if err != nil {
		return nil, nil, err
	}

	if s.storage != nil {
		if _, err := s.storage.StoreDocument(id, models.DocumentKindContract, pdfData); err != nil {
			s.logger.WithError(err).WithField("equipment_id", id).Warn("Could not store generated contract")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"equipment_id":   id,
		"pdf_size":       len(pdfData),
		"photos_skipped": report.SkippedCount(),
	}).Info("Equipment contract generated")

	return &models.PDFResponse{
		Message: "PDF generado correctamente",
		Base64:  base64.StdEncoding.EncodeToString(pdfData),
	}, report, nil
}

func toEquipmentResponse(eq models.Equipment) models.EquipmentResponse {
	resp := models.EquipmentResponse{Equipment: eq}
	if len(eq.Invoice) > 0 {
		encoded := base64.StdEncoding.EncodeToString(eq.Invoice)
		resp.InvoiceBase64 = &encoded
	}
	return resp
}

// optStr retorna nil para cadenas vacías
func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// optionalDate interpreta una fecha opcional enviada como texto
func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	parsed, err := render.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
