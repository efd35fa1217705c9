package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EventRepository maneja las operaciones de base de datos para Event
type EventRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewEventRepository crea una nueva instancia del repositorio
func NewEventRepository(db *DB, logger *logrus.Logger) *EventRepository {
	return &EventRepository{
		db:     db,
		logger: logger,
	}
}

const eventColumns = `id, title, date, type, time, created_at, updated_at`

func scanEvent(row interface{ Scan(...interface{}) error }) (*models.Event, error) {
	var ev models.Event
	err := row.Scan(
		&ev.ID, &ev.Title, &ev.Date, &ev.Type, &ev.Time,
		&ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Create crea un nuevo evento
func (r *EventRepository) Create(ev *models.Event) (*models.Event, error) {
	ev.ID = uuid.New()
	ev.CreatedAt = time.Now()
	ev.UpdatedAt = time.Now()

	query := `
		INSERT INTO events (id, title, date, type, time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecWithTimeout(query,
		ev.ID, ev.Title, ev.Date, ev.Type, ev.Time, ev.CreatedAt, ev.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}

	return ev, nil
}

// GetByID obtiene un evento por ID
func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	ev, err := scanEvent(r.db.QueryRowWithTimeout(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("event not found: %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying event: %w", err)
	}

	return ev, nil
}

// GetAll obtiene todos los eventos
func (r *EventRepository) GetAll() ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date, time`

	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, *ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// Search busca eventos cuyo título, tipo o fecha contenga el criterio
func (r *EventRepository) Search(criteria string) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE title ILIKE $1 OR type ILIKE $1 OR date ILIKE $1
		ORDER BY date, time
	`

	rows, err := r.db.QueryWithTimeout(query, "%"+criteria+"%")
	if err != nil {
		return nil, fmt.Errorf("error searching events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, *ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// Update actualiza los campos presentes en la petición
func (r *EventRepository) Update(id uuid.UUID, req *models.UpdateEventRequest) (*models.Event, error) {
	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Date != nil {
		addSet("date", *req.Date)
	}
	if req.Type != nil {
		addSet("type", *req.Type)
	}
	if req.Time != nil {
		addSet("time", *req.Time)
	}

	if len(setClauses) == 0 {
		return r.GetByID(id)
	}

	addSet("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE events SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argPos)

	result, err := r.db.ExecWithTimeout(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("event not found: %s: %w", id, ErrNotFound)
	}

	return r.GetByID(id)
}

// Delete elimina un evento
func (r *EventRepository) Delete(id uuid.UUID) error {
	result, err := r.db.ExecWithTimeout(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("event not found: %s: %w", id, ErrNotFound)
	}

	return nil
}
