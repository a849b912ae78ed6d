package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rogerio-castellano/apm-catalog/internal/models"
)

type PostgresProductRepository struct {
	db      *sql.DB
	typeMap *pgtype.Map
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db, typeMap: pgtype.NewMap()}
}

const productColumns = `id, product_name, product_code, description, price, category_id, quantity_in_stock, supplier_ids`

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := r.scan(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scan reads one product row; supplier_ids is an int4[] decoded through pgtype.
func (r *PostgresProductRepository) scan(row rowScanner) (models.Product, error) {
	var (
		p           models.Product
		supplierIDs []int32
	)
	err := row.Scan(&p.ID, &p.ProductName, &p.ProductCode, &p.Description, &p.Price,
		&p.CategoryID, &p.QuantityInStock, r.typeMap.SQLScanner(&supplierIDs))
	if err != nil {
		return models.Product{}, err
	}
	for _, id := range supplierIDs {
		p.SupplierIDs = append(p.SupplierIDs, int(id))
	}
	return p, nil
}
