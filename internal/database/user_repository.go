package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNotFound indica que el registro consultado no existe
var ErrNotFound = errors.New("record not found")

// UserRepository maneja las operaciones de base de datos para User
type UserRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewUserRepository crea una nueva instancia del repositorio
func NewUserRepository(db *DB, logger *logrus.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

const userColumns = `id, username, password, confirm_password, name, lastname, company,
	   doc, position, "check", role, address, phone,
	   reset_password_code, reset_password_expires, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.ConfirmPassword,
		&user.Name, &user.Lastname, &user.Company, &user.Doc, &user.Position,
		&user.Check, &user.Role, &user.Address, &user.Phone,
		&user.ResetPasswordCode, &user.ResetPasswordExpires,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create crea un nuevo usuario
func (r *UserRepository) Create(user *models.User) (*models.User, error) {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	query := `
		INSERT INTO users (
			id, username, password, confirm_password, name, lastname, company,
			doc, position, "check", role, address, phone, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
	`

	_, err := r.db.ExecWithTimeout(query,
		user.ID, user.Username, user.Password, user.ConfirmPassword,
		user.Name, user.Lastname, user.Company, user.Doc, user.Position,
		user.Check, user.Role, user.Address, user.Phone,
		user.CreatedAt, user.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// GetByID obtiene un usuario por ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowWithTimeout(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found: %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return user, nil
}

// GetByUsername obtiene un usuario por su correo
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRowWithTimeout(query, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found: %s: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return user, nil
}

// GetAll obtiene todos los usuarios
func (r *UserRepository) GetAll() ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// Update actualiza los campos presentes en la petición
func (r *UserRepository) Update(id uuid.UUID, req *models.UpdateUserRequest) (*models.User, error) {
	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Lastname != nil {
		addSet("lastname", *req.Lastname)
	}
	if req.Company != nil {
		addSet("company", *req.Company)
	}
	if req.Doc != nil {
		addSet("doc", *req.Doc)
	}
	if req.Position != nil {
		addSet("position", *req.Position)
	}
	if req.Username != nil {
		addSet("username", *req.Username)
	}
	if req.Password != nil {
		addSet("password", *req.Password)
	}
	if req.Role != nil {
		addSet("role", *req.Role)
	}
	if req.Address != nil {
		addSet("address", *req.Address)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}

	if len(setClauses) == 0 {
		return r.GetByID(id)
	}

	addSet("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argPos)

	result, err := r.db.ExecWithTimeout(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("user not found: %s: %w", id, ErrNotFound)
	}

	return r.GetByID(id)
}

// SetResetPasswordCode guarda el código de recuperación y su expiración
func (r *UserRepository) SetResetPasswordCode(id uuid.UUID, code int, expires time.Time) error {
	query := `
		UPDATE users
		SET reset_password_code = $1, reset_password_expires = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecWithTimeout(query, code, expires, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error setting reset password code: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user not found: %s: %w", id, ErrNotFound)
	}

	return nil
}

// UpdatePassword cambia la contraseña y limpia el código de recuperación
func (r *UserRepository) UpdatePassword(id uuid.UUID, hashedPassword string) error {
	query := `
		UPDATE users
		SET password = $1, reset_password_code = NULL, reset_password_expires = NULL,
		    updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecWithTimeout(query, hashedPassword, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user not found: %s: %w", id, ErrNotFound)
	}

	return nil
}

// Delete elimina un usuario
func (r *UserRepository) Delete(id uuid.UUID) error {
	result, err := r.db.ExecWithTimeout(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user not found: %s: %w", id, ErrNotFound)
	}

	return nil
}
