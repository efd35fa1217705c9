package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DocumentFilesRepository maneja la persistencia de los PDF generados
type DocumentFilesRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewDocumentFilesRepository crea una nueva instancia del repositorio
func NewDocumentFilesRepository(db *DB, logger *logrus.Logger) *DocumentFilesRepository {
	return &DocumentFilesRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert guarda el PDF de un registro, reemplazando la versión anterior si existe
func (r *DocumentFilesRepository) Upsert(recordID uuid.UUID, kind models.DocumentKind, pdfData []byte, pdfURL *string) (*models.DocumentFile, error) {
	file := &models.DocumentFile{
		ID:          uuid.New(),
		RecordID:    recordID,
		Kind:        kind,
		PDFData:     pdfData,
		PDFSize:     int64(len(pdfData)),
		PDFURL:      pdfURL,
		GeneratedAt: time.Now(),
		UpdatedAt:   time.Now(),
	}

	query := `
		INSERT INTO document_files (
			id, record_id, kind, pdf_data, pdf_size, pdf_url, generated_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (record_id, kind) DO UPDATE SET
			pdf_data = EXCLUDED.pdf_data,
			pdf_size = EXCLUDED.pdf_size,
			pdf_url = EXCLUDED.pdf_url,
			generated_at = EXCLUDED.generated_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecWithTimeout(query,
		file.ID, file.RecordID, file.Kind, file.PDFData, file.PDFSize,
		file.PDFURL, file.GeneratedAt, file.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("error storing document file: %w", err)
	}

	return file, nil
}

// GetByRecord obtiene el PDF persistido de un registro
func (r *DocumentFilesRepository) GetByRecord(recordID uuid.UUID, kind models.DocumentKind) (*models.DocumentFile, error) {
	query := `
		SELECT id, record_id, kind, pdf_data, pdf_size, pdf_url, generated_at, updated_at
		FROM document_files
		WHERE record_id = $1 AND kind = $2
	`

	var file models.DocumentFile
	err := r.db.QueryRowWithTimeout(query, recordID, kind).Scan(
		&file.ID, &file.RecordID, &file.Kind, &file.PDFData, &file.PDFSize,
		&file.PDFURL, &file.GeneratedAt, &file.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("document file not found for record %s: %w", recordID, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying document file: %w", err)
	}

	return &file, nil
}

// DeleteByRecord elimina los PDF persistidos de un registro
func (r *DocumentFilesRepository) DeleteByRecord(recordID uuid.UUID) error {
	_, err := r.db.ExecWithTimeout(`DELETE FROM document_files WHERE record_id = $1`, recordID)
	if err != nil {
		return fmt.Errorf("error deleting document files: %w", err)
	}

	return nil
}
