package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fudge-kettle/config"
	"fudge-kettle/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, description, price, image_url, featured, flavor, stock, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.Featured, &p.Flavor, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, flavor string, featured *bool, page, limit int) ([]models.Product, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if flavor != "" {
		where += fmt.Sprintf(" AND flavor = $%d", argIndex)
		args = append(args, flavor)
		argIndex++
	}
	if featured != nil {
		where += fmt.Sprintf(" AND featured = $%d", argIndex)
		args = append(args, *featured)
		argIndex++
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + productColumns + " FROM products" + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	row := config.DB.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// GetByIDs resolves a batch of product ids. Callers detect missing products
// by comparing the returned map against the requested ids.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []int) (map[int]models.Product, error) {
	rows, err := config.DB.Query(ctx, "SELECT "+productColumns+" FROM products WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := map[int]models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products[p.ID] = *p
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, image_url, featured, flavor, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id, created_at, updated_at
	`
	return config.DB.QueryRow(ctx, query,
		p.Name, p.Description, p.Price, p.ImageURL, p.Featured, p.Flavor, p.Stock, time.Now(),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := `UPDATE products SET name = $1, description = $2, price = $3, image_url = $4,
	          featured = $5, flavor = $6, stock = $7, updated_at = $8 WHERE id = $9`
	tag, err := config.DB.Exec(ctx, query,
		p.Name, p.Description, p.Price, p.ImageURL, p.Featured, p.Flavor, p.Stock, time.Now(), p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) SetImage(ctx context.Context, id int, imageURL string) error {
	tag, err := config.DB.Exec(ctx,
		"UPDATE products SET image_url = $1, updated_at = $2 WHERE id = $3",
		imageURL, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrProductInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}
