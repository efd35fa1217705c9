package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errStreamCut simula una conexión cortada a mitad del cursor
var errStreamCut = errors.New("driver: connection reset")

func init() {
	sql.Register("stubpg", &stubDriver{})
}

// stubDriver entrega conexiones cuyo comportamiento se elige con el DSN
type stubDriver struct{}

func (d *stubDriver) Open(dsn string) (driver.Conn, error) {
	return &stubConn{mode: dsn}, nil
}

type stubConn struct {
	mode string
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *stubConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	switch c.mode {
	case "slow":
		return &slowRows{delay: 50 * time.Millisecond}, nil
	case "events-cut":
		return &cutEventRows{}, nil
	}
	return nil, errors.New("unknown mode: " + c.mode)
}

// slowRows entrega una sola fila tras una pausa, como un cursor lento
type slowRows struct {
	delay time.Duration
	done  bool
}

func (r *slowRows) Columns() []string { return []string{"value"} }
func (r *slowRows) Close() error      { return nil }

func (r *slowRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	time.Sleep(r.delay)
	dest[0] = "ok"
	r.done = true
	return nil
}

// cutEventRows entrega una fila de eventos y luego corta el cursor
type cutEventRows struct {
	sent bool
}

func (r *cutEventRows) Columns() []string {
	return []string{"id", "title", "date", "type", "time", "created_at", "updated_at"}
}

func (r *cutEventRows) Close() error { return nil }

func (r *cutEventRows) Next(dest []driver.Value) error {
	if r.sent {
		return errStreamCut
	}
	now := time.Now()
	dest[0] = uuid.New().String()
	dest[1] = "Mantenimiento preventivo"
	dest[2] = "2025-03-10"
	dest[3] = "maintenance"
	dest[4] = "10:00"
	dest[5] = now
	dest[6] = now
	r.sent = true
	return nil
}

func openStubDB(t *testing.T, mode string) *DB {
	t.Helper()
	sqlDB, err := sql.Open("stubpg", mode)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return &DB{sqlDB}
}

func TestQueryWithTimeoutKeepsRowsReadable(t *testing.T) {
	db := openStubDB(t, "slow")

	rows, err := db.QueryWithTimeout("SELECT value FROM things")
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())

	var value string
	require.NoError(t, rows.Scan(&value))
	assert.Equal(t, "ok", value)

	assert.False(t, rows.Next())
	assert.NoError(t, rows.Err())
	assert.NoError(t, rows.Close())
}

func TestQueryRowWithTimeoutKeepsRowReadable(t *testing.T) {
	db := openStubDB(t, "slow")

	var value string
	err := db.QueryRowWithTimeout("SELECT value FROM things").Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "ok", value)
}

func TestEventGetAllSurfacesIterationError(t *testing.T) {
	db := openStubDB(t, "events-cut")
	repo := NewEventRepository(db, logrus.New())

	events, err := repo.GetAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, errStreamCut)
	assert.Contains(t, err.Error(), "error iterating event rows")
	assert.Nil(t, events)
}
