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

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	List(ctx context.Context) ([]model.Customer, error)
	GetByID(ctx context.Context, id int) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id int) error
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

const customerColumns = `id, company_name, address, city, mobile_number, created_at, updated_at`

// List fetches all customers in insertion order
func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.Address, &c.City, &c.MobileNumber, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// GetByID fetches a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	var c model.Customer
	err := r.DB.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id=$1`, id).
		Scan(&c.ID, &c.CompanyName, &c.Address, &c.City, &c.MobileNumber, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCustomerNotFound(id)
		}
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
        INSERT INTO customers (company_name, address, city, mobile_number, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	return db.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query, c.CompanyName, c.Address, c.City, c.MobileNumber, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}
		return nil
	})
}

// Update writes every business field and refreshes updated_at
func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	c.UpdatedAt = time.Now().UTC()

	query := `
        UPDATE customers
        SET company_name=$1, address=$2, city=$3, mobile_number=$4, updated_at=$5
        WHERE id=$6
    `
	return db.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, c.CompanyName, c.Address, c.City, c.MobileNumber, c.UpdatedAt, c.ID)
		if err != nil {
			return fmt.Errorf("update customer %d: %w", c.ID, err)
		}
		return expectOneRow(res, appErrors.NewCustomerNotFound(c.ID))
	})
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	return db.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM customers WHERE id=$1`, id)
		if err != nil {
			return fmt.Errorf("delete customer %d: %w", id, err)
		}
		return expectOneRow(res, appErrors.NewCustomerNotFound(id))
	})
}

// expectOneRow returns notFound when the statement touched no rows.
func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
