package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentKind identifica el tipo de documento generado
type DocumentKind string

const (
	DocumentKindContract DocumentKind = "contract"
	DocumentKindSheet    DocumentKind = "sheet"
)

// DocumentFile representa un PDF generado y persistido para un registro
type DocumentFile struct {
	ID          uuid.UUID    `json:"id"`
	RecordID    uuid.UUID    `json:"record_id"`
	Kind        DocumentKind `json:"kind"`
	PDFData     []byte       `json:"-"`
	PDFSize     int64        `json:"pdf_size"`
	PDFURL      *string      `json:"pdf_url,omitempty"`
	GeneratedAt time.Time    `json:"generated_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
