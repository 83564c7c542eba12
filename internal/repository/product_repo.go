package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dewey-byte/angular-project/internal/model"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	DB DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	var id int64
	query := `
		INSERT INTO products (product_name, category, description, author_brand, price, stock_quantity, image_uri, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING product_id
	`
	err := r.DB.QueryRow(ctx, query,
		p.ProductName, p.Category, p.Description, p.AuthorBrand, p.Price, p.StockQuantity, p.ImageURI, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := `
		SELECT product_id, product_name, COALESCE(category,''), COALESCE(description,''),
		       COALESCE(author_brand,''), price, stock_quantity, COALESCE(image_uri,''), created_at
		FROM products
		WHERE product_id=$1
	`
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&p.ProductID, &p.ProductName, &p.Category, &p.Description,
		&p.AuthorBrand, &p.Price, &p.StockQuantity, &p.ImageURI, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

// Exists reports whether a product row exists; cheaper than GetByID when the
// caller only needs the check.
func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE product_id=$1)`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	query := `
		SELECT product_id, product_name, COALESCE(category,''), COALESCE(description,''),
		       COALESCE(author_brand,''), price, stock_quantity, COALESCE(image_uri,''), created_at
		FROM products
		ORDER BY product_id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ProductID, &p.ProductName, &p.Category, &p.Description,
			&p.AuthorBrand, &p.Price, &p.StockQuantity, &p.ImageURI, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products
		SET product_name=$1, category=$2, description=$3, author_brand=$4,
		    price=$5, stock_quantity=$6, image_uri=$7
		WHERE product_id=$8
	`
	tag, err := r.DB.Exec(ctx, query,
		p.ProductName, p.Category, p.Description, p.AuthorBrand,
		p.Price, p.StockQuantity, p.ImageURI, p.ProductID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", p.ProductID, ErrNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM products WHERE product_id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return nil
}

// Filters returns the distinct category and brand values used by the catalog
// filter sidebar.
func (r *ProductRepository) Filters(ctx context.Context) (*model.ProductFilters, error) {
	f := &model.ProductFilters{Categories: []string{}, Brands: []string{}}

	rows, err := r.DB.Query(ctx, `SELECT DISTINCT category FROM products WHERE category IS NOT NULL AND category <> '' ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		f.Categories = append(f.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.DB.Query(ctx, `SELECT DISTINCT author_brand FROM products WHERE author_brand IS NOT NULL AND author_brand <> '' ORDER BY author_brand`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, err
		}
		f.Brands = append(f.Brands, b)
	}
	return f, rows.Err()
}
