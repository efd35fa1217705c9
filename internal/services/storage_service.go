package services

import (
	"context"
	"fmt"
	"time"

	"github.com/diego410711/mbf-backend/internal/database"
	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StorageService persiste los PDF generados: la base de datos es la fuente
// de verdad y el almacenamiento de objetos, cuando está configurado, guarda
// una copia descargable
type StorageService struct {
	objectStore *database.ObjectStoreClient
	docFiles    *database.DocumentFilesRepository
	logger      *logrus.Logger
}

// NewStorageService crea una nueva instancia del servicio de almacenamiento.
// objectStore puede ser nil cuando el almacenamiento externo no está
// configurado.
func NewStorageService(objectStore *database.ObjectStoreClient, docFiles *database.DocumentFilesRepository, logger *logrus.Logger) *StorageService {
	return &StorageService{
		objectStore: objectStore,
		docFiles:    docFiles,
		logger:      logger,
	}
}

// StoreDocument guarda el PDF de un registro. La subida al almacenamiento
// de objetos es de mejor esfuerzo; la fila en document_files siempre se
// escribe.
func (s *StorageService) StoreDocument(recordID uuid.UUID, kind models.DocumentKind, pdfData []byte) (*models.DocumentFile, error) {
	var pdfURL *string

	if s.objectStore != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		fileName := fmt.Sprintf("%s/%s.pdf", kind, recordID)
		url, err := s.objectStore.UploadFile(ctx, s.objectStore.Bucket(), fileName, pdfData, "application/pdf")
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"record_id": recordID,
				"kind":      kind,
			}).Warn("Object storage upload failed, keeping database copy only")
		} else {
			pdfURL = &url
		}
	}

	file, err := s.docFiles.Upsert(recordID, kind, pdfData, pdfURL)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"record_id": recordID,
		"kind":      kind,
		"pdf_size":  file.PDFSize,
		"uploaded":  pdfURL != nil,
	}).Info("Generated document stored")

	return file, nil
}

// GetDocument recupera el PDF persistido de un registro
func (s *StorageService) GetDocument(recordID uuid.UUID, kind models.DocumentKind) (*models.DocumentFile, error) {
	return s.docFiles.GetByRecord(recordID, kind)
}

// DeleteDocuments elimina los PDF de un registro, incluidas las copias del
// almacenamiento de objetos
func (s *StorageService) DeleteDocuments(recordID uuid.UUID) error {
	if s.objectStore != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		for _, kind := range []models.DocumentKind{models.DocumentKindContract, models.DocumentKindSheet} {
			fileName := fmt.Sprintf("%s/%s.pdf", kind, recordID)
			if err := s.objectStore.DeleteFile(ctx, s.objectStore.Bucket(), fileName); err != nil {
				s.logger.WithError(err).WithField("file", fileName).Warn("Could not delete object storage copy")
			}
		}
	}

	return s.docFiles.DeleteByRecord(recordID)
}
