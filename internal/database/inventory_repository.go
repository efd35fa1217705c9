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

// InventoryRepository maneja las operaciones de base de datos para Inventory
type InventoryRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewInventoryRepository crea una nueva instancia del repositorio
func NewInventoryRepository(db *DB, logger *logrus.Logger) *InventoryRepository {
	return &InventoryRepository{
		db:     db,
		logger: logger,
	}
}

const inventoryColumns = `id, name, brand, model, serial_number, location, purchase_date,
	   voltage, power, weight, capacity, material, usage, technology,
	   maintenance_priority, ft, created_at, updated_at`

func scanInventory(row interface{ Scan(...interface{}) error }) (*models.Inventory, error) {
	var inv models.Inventory
	err := row.Scan(
		&inv.ID, &inv.Name, &inv.Brand, &inv.Model, &inv.SerialNumber,
		&inv.Location, &inv.PurchaseDate, &inv.Voltage, &inv.Power,
		&inv.Weight, &inv.Capacity, &inv.Material, &inv.Usage,
		&inv.Technology, &inv.MaintenancePriority, &inv.FT,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create crea un nuevo activo de inventario
func (r *InventoryRepository) Create(inv *models.Inventory) (*models.Inventory, error) {
	inv.ID = uuid.New()
	inv.CreatedAt = time.Now()
	inv.UpdatedAt = time.Now()

	query := `
		INSERT INTO inventory (
			id, name, brand, model, serial_number, location, purchase_date,
			voltage, power, weight, capacity, material, usage, technology,
			maintenance_priority, ft, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18
		)
	`

	_, err := r.db.ExecWithTimeout(query,
		inv.ID, inv.Name, inv.Brand, inv.Model, inv.SerialNumber,
		inv.Location, inv.PurchaseDate, inv.Voltage, inv.Power,
		inv.Weight, inv.Capacity, inv.Material, inv.Usage,
		inv.Technology, inv.MaintenancePriority, inv.FT,
		inv.CreatedAt, inv.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating inventory item: %w", err)
	}

	return inv, nil
}

// GetByID obtiene un activo por ID
func (r *InventoryRepository) GetByID(id uuid.UUID) (*models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1`

	inv, err := scanInventory(r.db.QueryRowWithTimeout(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("inventory item not found: %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying inventory item: %w", err)
	}

	return inv, nil
}

// GetByFT obtiene un activo por su código de ficha técnica
func (r *InventoryRepository) GetByFT(ft string) (*models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE ft = $1`

	inv, err := scanInventory(r.db.QueryRowWithTimeout(query, ft))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("inventory item not found with FT %s: %w", ft, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying inventory item: %w", err)
	}

	return inv, nil
}

// GetAll obtiene todos los activos
func (r *InventoryRepository) GetAll() ([]models.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY created_at DESC`

	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("error querying inventory: %w", err)
	}
	defer rows.Close()

	var items []models.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning inventory item: %w", err)
		}
		items = append(items, *inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}

	return items, nil
}

// Update actualiza los campos presentes en la petición
func (r *InventoryRepository) Update(id uuid.UUID, req *models.UpdateInventoryRequest, purchaseDate *time.Time) (*models.Inventory, error) {
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
	if req.SerialNumber != nil {
		addSet("serial_number", *req.SerialNumber)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if purchaseDate != nil {
		addSet("purchase_date", *purchaseDate)
	}
	if req.Voltage != nil {
		addSet("voltage", *req.Voltage)
	}
	if req.Power != nil {
		addSet("power", *req.Power)
	}
	if req.Weight != nil {
		addSet("weight", *req.Weight)
	}
	if req.Capacity != nil {
		addSet("capacity", *req.Capacity)
	}
	if req.Material != nil {
		addSet("material", *req.Material)
	}
	if req.Usage != nil {
		addSet("usage", *req.Usage)
	}
	if req.Technology != nil {
		addSet("technology", *req.Technology)
	}
	if req.MaintenancePriority != nil {
		addSet("maintenance_priority", *req.MaintenancePriority)
	}
	if req.FT != nil {
		addSet("ft", *req.FT)
	}

	if len(setClauses) == 0 {
		return r.GetByID(id)
	}

	addSet("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE inventory SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argPos)

	result, err := r.db.ExecWithTimeout(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error updating inventory item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("inventory item not found: %s: %w", id, ErrNotFound)
	}

	return r.GetByID(id)
}

// Delete elimina un activo
func (r *InventoryRepository) Delete(id uuid.UUID) error {
	result, err := r.db.ExecWithTimeout(`DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting inventory item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("inventory item not found: %s: %w", id, ErrNotFound)
	}

	return nil
}
