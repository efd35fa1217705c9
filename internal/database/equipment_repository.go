package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// EquipmentRepository maneja las operaciones de base de datos para Equipment
type EquipmentRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewEquipmentRepository crea una nueva instancia del repositorio
func NewEquipmentRepository(db *DB, logger *logrus.Logger) *EquipmentRepository {
	return &EquipmentRepository{
		db:     db,
		logger: logger,
	}
}

const equipmentColumns = `id, name, brand, model, serial, issue, photos, invoice,
	   assigned_technician, diagnosis, customer_approval, authorization_date,
	   delivery_date, accessories, firstname, lastname, email, phone, address,
	   user_id, doc, company, created_at, updated_at`

func scanEquipment(row interface{ Scan(...interface{}) error }) (*models.Equipment, error) {
	var eq models.Equipment
	var photos pq.ByteaArray
	err := row.Scan(
		&eq.ID, &eq.Name, &eq.Brand, &eq.Model, &eq.Serial, &eq.Issue,
		&photos, &eq.Invoice, &eq.AssignedTechnician, &eq.Diagnosis,
		&eq.CustomerApproval, &eq.AuthorizationDate, &eq.DeliveryDate,
		&eq.Accessories, &eq.Firstname, &eq.Lastname, &eq.Email, &eq.Phone,
		&eq.Address, &eq.UserID, &eq.Doc, &eq.Company,
		&eq.CreatedAt, &eq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	eq.Photos = [][]byte(photos)
	return &eq, nil
}

// Create crea un nuevo equipo
func (r *EquipmentRepository) Create(eq *models.Equipment) (*models.Equipment, error) {
	eq.ID = uuid.New()
	eq.CreatedAt = time.Now()
	eq.UpdatedAt = time.Now()

	query := `
		INSERT INTO equipment (
			id, name, brand, model, serial, issue, photos, invoice,
			assigned_technician, diagnosis, customer_approval, authorization_date,
			delivery_date, accessories, firstname, lastname, email, phone, address,
			user_id, doc, company, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)
	`

	_, err := r.db.ExecWithTimeout(query,
		eq.ID, eq.Name, eq.Brand, eq.Model, eq.Serial, eq.Issue,
		pq.ByteaArray(eq.Photos), eq.Invoice, eq.AssignedTechnician,
		eq.Diagnosis, eq.CustomerApproval, eq.AuthorizationDate,
		eq.DeliveryDate, eq.Accessories, eq.Firstname, eq.Lastname,
		eq.Email, eq.Phone, eq.Address, eq.UserID, eq.Doc, eq.Company,
		eq.CreatedAt, eq.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating equipment: %w", err)
	}

	return eq, nil
}

// GetByID obtiene un equipo por ID
func (r *EquipmentRepository) GetByID(id uuid.UUID) (*models.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`

	eq, err := scanEquipment(r.db.QueryRowWithTimeout(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("equipment not found: %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying equipment: %w", err)
	}

	return eq, nil
}

// GetAll obtiene los equipos, con filtros opcionales por técnico y correo
func (r *EquipmentRepository) GetAll(technicianName, email string) ([]models.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment`

	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if technicianName != "" {
		conditions = append(conditions, fmt.Sprintf("assigned_technician = $%d", argPos))
		args = append(args, technicianName)
		argPos++
	}
	if email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", argPos))
		args = append(args, email)
		argPos++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying equipment: %w", err)
	}
	defer rows.Close()

	var items []models.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning equipment: %w", err)
		}
		items = append(items, *eq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating equipment rows: %w", err)
	}

	return items, nil
}

// Update actualiza los campos presentes en la petición
func (r *EquipmentRepository) Update(id uuid.UUID, req *models.UpdateEquipmentRequest, photos [][]byte, invoice []byte, authorizationDate, deliveryDate *time.Time) (*models.Equipment, error) {
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
	if req.Brand != nil {
		addSet("brand", *req.Brand)
	}
	if req.Model != nil {
		addSet("model", *req.Model)
	}
	if req.Serial != nil {
		addSet("serial", *req.Serial)
	}
	if req.Issue != nil {
		addSet("issue", *req.Issue)
	}
	if req.AssignedTechnician != nil {
		addSet("assigned_technician", *req.AssignedTechnician)
	}
	if req.Diagnosis != nil {
		addSet("diagnosis", *req.Diagnosis)
	}
	if req.CustomerApproval != nil {
		addSet("customer_approval", *req.CustomerApproval)
	}
	if authorizationDate != nil {
		addSet("authorization_date", *authorizationDate)
	}
	if deliveryDate != nil {
		addSet("delivery_date", *deliveryDate)
	}
	if req.Accessories != nil {
		addSet("accessories", *req.Accessories)
	}
	if req.Firstname != nil {
		addSet("firstname", *req.Firstname)
	}
	if req.Lastname != nil {
		addSet("lastname", *req.Lastname)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Address != nil {
		addSet("address", *req.Address)
	}
	if req.UserID != nil {
		addSet("user_id", *req.UserID)
	}
	if req.Doc != nil {
		addSet("doc", *req.Doc)
	}
	if req.Company != nil {
		addSet("company", *req.Company)
	}
	if photos != nil {
		addSet("photos", pq.ByteaArray(photos))
	}
	if invoice != nil {
		addSet("invoice", invoice)
	}

	if len(setClauses) == 0 {
		return r.GetByID(id)
	}

	addSet("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE equipment SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argPos)

	result, err := r.db.ExecWithTimeout(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error updating equipment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("equipment not found: %s: %w", id, ErrNotFound)
	}

	return r.GetByID(id)
}

// UpdatePhotos reemplaza el arreglo de fotos de un equipo
func (r *EquipmentRepository) UpdatePhotos(id uuid.UUID, photos [][]byte) (*models.Equipment, error) {
	query := `UPDATE equipment SET photos = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecWithTimeout(query, pq.ByteaArray(photos), time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("error updating equipment photos: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("equipment not found: %s: %w", id, ErrNotFound)
	}

	return r.GetByID(id)
}

// UpdateCustomerApproval registra la decisión del cliente
func (r *EquipmentRepository) UpdateCustomerApproval(id uuid.UUID, approval string, authorizationDate *time.Time) (*models.Equipment, error) {
	setClauses := []string{"customer_approval = $1", "updated_at = $2"}
	args := []interface{}{approval, time.Now()}
	argPos := 3

	if authorizationDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("authorization_date = $%d", argPos))
		args = append(args, *authorizationDate)
		argPos++
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE equipment SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argPos)

	result, err := r.db.ExecWithTimeout(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error updating customer approval: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("equipment not found: %s: %w", id, ErrNotFound)
	}

	return r.GetByID(id)
}

// Delete elimina un equipo
func (r *EquipmentRepository) Delete(id uuid.UUID) error {
	result, err := r.db.ExecWithTimeout(`DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting equipment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("equipment not found: %s: %w", id, ErrNotFound)
	}

	return nil
}
