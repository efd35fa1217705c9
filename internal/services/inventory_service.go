package services

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/diego410711/mbf-backend/internal/database"
	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/diego410711/mbf-backend/internal/render"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrFTTaken indica que el código de ficha técnica ya está en uso
var ErrFTTaken = errors.New("technical sheet code already exists")

// InventoryService implementa el registro de activos y la generación de su
// ficha técnica y código QR
type InventoryService struct {
	repo    *database.InventoryRepository
	engine  *render.Engine
	storage *StorageService
	logger  *logrus.Logger
}

// NewInventoryService crea una nueva instancia del servicio de inventario
func NewInventoryService(repo *database.InventoryRepository, engine *render.Engine, storage *StorageService, logger *logrus.Logger) *InventoryService {
	return &InventoryService{
		repo:    repo,
		engine:  engine,
		storage: storage,
		logger:  logger,
	}
}

// Create da de alta un activo; el código FT debe ser único cuando viene
func (s *InventoryService) Create(req *models.CreateInventoryRequest) (*models.Inventory, error) {
	if err := s.checkFTAvailable(req.FT, uuid.Nil); err != nil {
		return nil, err
	}

	purchaseDate, err := optionalDate(req.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("invalid purchaseDate: %w", err)
	}

	inv := &models.Inventory{
		Name:                req.Name,
		Brand:               req.Brand,
		Model:               req.Model,
		SerialNumber:        req.SerialNumber,
		Location:            req.Location,
		PurchaseDate:        purchaseDate,
		Voltage:             req.Voltage,
		Power:               req.Power,
		Weight:              req.Weight,
		Capacity:            req.Capacity,
		Material:            req.Material,
		Usage:               req.Usage,
		Technology:          req.Technology,
		MaintenancePriority: req.MaintenancePriority,
		FT:                  req.FT,
	}

	created, err := s.repo.Create(inv)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"inventory_id": created.ID,
		"name":         created.Name,
	}).Info("Inventory item created")

	return created, nil
}

// GetAll lista los activos
func (s *InventoryService) GetAll() ([]models.Inventory, error) {
	return s.repo.GetAll()
}

// GetByID obtiene un activo
func (s *InventoryService) GetByID(id uuid.UUID) (*models.Inventory, error) {
	return s.repo.GetByID(id)
}

// Update modifica un activo preservando la unicidad del código FT
func (s *InventoryService) Update(id uuid.UUID, req *models.UpdateInventoryRequest) (*models.Inventory, error) {
	if err := s.checkFTAvailable(req.FT, id); err != nil {
		return nil, err
	}

	if req.PurchaseDate != nil && *req.PurchaseDate != "" {
		parsed, err := render.ParseDate(*req.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid purchaseDate: %w", err)
		}
		return s.repo.Update(id, req, &parsed)
	}

	return s.repo.Update(id, req, nil)
}

// Delete elimina un activo y sus documentos generados
func (s *InventoryService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if s.storage != nil {
		if err := s.storage.DeleteDocuments(id); err != nil {
			s.logger.WithError(err).WithField("inventory_id", id).Warn("Could not delete generated documents")
		}
	}

	return nil
}

// GeneratePDF produce la ficha técnica del activo, la archiva y la retorna
// en Base64
func (s *InventoryService) GeneratePDF(id uuid.UUID) (*models.PDFResponse, *render.Report, error) {
	inv, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	pdfData, report, err := s.engine.RenderInventorySheet(inv)
	if err != nil {
		return nil, nil, err
	}

	if s.storage != nil {
		if _, err := s.storage.StoreDocument(id, models.DocumentKindSheet, pdfData); err != nil {
			s.logger.WithError(err).WithField("inventory_id", id).Warn("Could not store generated sheet")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"inventory_id": id,
		"pdf_size":     len(pdfData),
	}).Info("Inventory sheet generated")

	return &models.PDFResponse{
		Message: "PDF generado correctamente",
		Base64:  base64.StdEncoding.EncodeToString(pdfData),
	}, report, nil
}

// GenerateQR codifica el identificador del activo como imagen QR en PNG
func (s *InventoryService) GenerateQR(id uuid.UUID) ([]byte, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, err
	}

	return render.EncodeRecordQR(id.String())
}

// checkFTAvailable verifica que el código FT no pertenezca a otro activo
func (s *InventoryService) checkFTAvailable(ft *string, selfID uuid.UUID) error {
	if ft == nil || *ft == "" {
		return nil
	}

	existing, err := s.repo.GetByFT(*ft)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil
		}
		return err
	}

	if existing.ID != selfID {
		return ErrFTTaken
	}
	return nil
}
