package repository

import (
	"context"
	"fmt"

	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/db"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/model"
)

// ProductRepository runs catalog queries over the session bound to the
// current request.
type ProductRepository struct {
	DB db.Querier
}

func NewProductRepository(q db.Querier) *ProductRepository {
	return &ProductRepository{DB: q}
}

// List returns all products that have not been soft-deleted.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT id, name, price, quantity, amount, deleted_flag FROM products WHERE deleted_flag = 0 ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	defer rows.Close()

	list := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Amount, &p.DeletedFlag); err != nil {
			return nil, fmt.Errorf("error scanning product row: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return list, nil
}

// Create inserts a live product row and returns the generated id.
func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	var id int64
	query := `INSERT INTO products (name, price, quantity, amount, deleted_flag) VALUES ($1, $2, $3, $4, 0) RETURNING id`
	if err := r.DB.QueryRowContext(ctx, query, p.Name, p.Price, p.Quantity, p.Amount).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating product: %w", err)
	}
	return id, nil
}

// Update overwrites a product row by id. There is no existence check:
// updating an absent id affects zero rows and is not an error.
func (r *ProductRepository) Update(ctx context.Context, id int64, p *model.Product) (int64, error) {
	query := `UPDATE products SET name=$1, price=$2, quantity=$3, amount=$4 WHERE id=$5`
	res, err := r.DB.ExecContext(ctx, query, p.Name, p.Price, p.Quantity, p.Amount, id)
	if err != nil {
		return 0, fmt.Errorf("error updating product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}
	return affected, nil
}

// SoftDelete marks a product as deleted. Same no-existence-check contract
// as Update; the row is never physically removed.
func (r *ProductRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	query := `UPDATE products SET deleted_flag = 1 WHERE id=$1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}
	return affected, nil
}
