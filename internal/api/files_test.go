package api

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diego410711/mbf-backend/internal/database"
	"github.com/diego410711/mbf-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contractPDF = []byte("%PDF-1.3 contenido de contrato")

func init() {
	gin.SetMode(gin.TestMode)
	sql.Register("stubdocs", &docDriver{})
}

// docDriver entrega conexiones que responden consultas sobre document_files;
// el DSN "empty" simula una tabla sin filas
type docDriver struct{}

func (d *docDriver) Open(dsn string) (driver.Conn, error) {
	return &docConn{mode: dsn}, nil
}

type docConn struct {
	mode string
}

func (c *docConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *docConn) Close() error { return nil }

func (c *docConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *docConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	return &docRows{done: c.mode == "empty"}, nil
}

type docRows struct {
	done bool
}

func (r *docRows) Columns() []string {
	return []string{"id", "record_id", "kind", "pdf_data", "pdf_size", "pdf_url", "generated_at", "updated_at"}
}

func (r *docRows) Close() error { return nil }

func (r *docRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	now := time.Now()
	dest[0] = uuid.New().String()
	dest[1] = uuid.New().String()
	dest[2] = "contract"
	dest[3] = contractPDF
	dest[4] = int64(len(contractPDF))
	dest[5] = nil
	dest[6] = now
	dest[7] = now
	r.done = true
	return nil
}

func newFilesRouter(t *testing.T, mode string) *gin.Engine {
	t.Helper()

	sqlDB, err := sql.Open("stubdocs", mode)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db := &database.DB{DB: sqlDB}
	storage := services.NewStorageService(nil, database.NewDocumentFilesRepository(db, logger), logger)

	a := NewAPI(nil, nil, nil, nil, nil, storage, logger)
	router := gin.New()
	a.RegisterRoutes(router)
	return router
}

func TestDownloadContract(t *testing.T) {
	router := newFilesRouter(t, "documents")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/files/contracts/"+uuid.New().String(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline; filename=contract-")
	assert.Equal(t, contractPDF, w.Body.Bytes())
}

func TestDownloadContractNotFound(t *testing.T) {
	router := newFilesRouter(t, "empty")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/files/contracts/"+uuid.New().String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadContractInvalidID(t *testing.T) {
	router := newFilesRouter(t, "documents")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/files/contracts/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadSheetRouteRegistered(t *testing.T) {
	router := newFilesRouter(t, "documents")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/files/sheets/"+uuid.New().String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
