package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/unclebandit/catalog-backend/internal/db"
	appErrors "github.com/unclebandit/catalog-backend/internal/errors"
	"github.com/unclebandit/catalog-backend/internal/model"
)

type ProductRepositoryInterface interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int) error
}

type ProductRepository struct {
	DB *sql.DB
}

const productColumns = `id, product_name, price, product_type, image_filename, image_path, thumbnail_path, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (model.Product, error) {
	var (
		p                         model.Product
		filename, path, thumbnail sql.NullString
	)
	err := row.Scan(&p.ID, &p.ProductName, &p.Price, &p.ProductType, &filename, &path, &thumbnail, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}
	p.ImageFilename = nullableString(filename)
	p.ImagePath = nullableString(path)
	p.ThumbnailPath = nullableString(thumbnail)
	return p, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	p, err := scanProduct(r.DB.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewProductNotFound(id)
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
        INSERT INTO products (product_name, price, product_type, image_filename, image_path, thumbnail_path, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	return db.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query,
			p.ProductName, p.Price, p.ProductType,
			p.ImageFilename, p.ImagePath, p.ThumbnailPath,
			p.CreatedAt, p.UpdatedAt,
		).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		return nil
	})
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	p.UpdatedAt = time.Now().UTC()

	query := `
        UPDATE products
        SET product_name=$1, price=$2, product_type=$3,
            image_filename=$4, image_path=$5, thumbnail_path=$6, updated_at=$7
        WHERE id=$8
    `
	return db.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query,
			p.ProductName, p.Price, p.ProductType,
			p.ImageFilename, p.ImagePath, p.ThumbnailPath,
			p.UpdatedAt, p.ID,
		)
		if err != nil {
			return fmt.Errorf("update product %d: %w", p.ID, err)
		}
		return expectOneRow(res, appErrors.NewProductNotFound(p.ID))
	})
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	return db.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
		if err != nil {
			return fmt.Errorf("delete product %d: %w", id, err)
		}
		return expectOneRow(res, appErrors.NewProductNotFound(id))
	})
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
