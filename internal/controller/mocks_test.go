package controller_test

import (
	"context"
	"time"

	appErrors "github.com/unclebandit/catalog-backend/internal/errors"
	"github.com/unclebandit/catalog-backend/internal/model"
)

// --- Mock Repositories ---

type MockCustomerRepo struct {
	customers []model.Customer
	nextID    int
}

func (m *MockCustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	return append([]model.Customer{}, m.customers...), nil
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, appErrors.NewCustomerNotFound(id)
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	m.nextID++
	now := time.Now().UTC()
	c.ID, c.CreatedAt, c.UpdatedAt = m.nextID, now, now
	m.customers = append(m.customers, *c)
	return nil
}

func (m *MockCustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	for i := range m.customers {
		if m.customers[i].ID == c.ID {
			c.UpdatedAt = time.Now().UTC()
			m.customers[i] = *c
			return nil
		}
	}
	return appErrors.NewCustomerNotFound(c.ID)
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id int) error {
	for i, c := range m.customers {
		if c.ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return nil
		}
	}
	return appErrors.NewCustomerNotFound(id)
}

type MockProductRepo struct {
	products []model.Product
	nextID   int
}

func (m *MockProductRepo) List(ctx context.Context) ([]model.Product, error) {
	return append([]model.Product{}, m.products...), nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id int) (*model.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, appErrors.NewProductNotFound(id)
}

func (m *MockProductRepo) Create(ctx context.Context, p *model.Product) error {
	m.nextID++
	now := time.Now().UTC()
	p.ID, p.CreatedAt, p.UpdatedAt = m.nextID, now, now
	m.products = append(m.products, *p)
	return nil
}

func (m *MockProductRepo) Update(ctx context.Context, p *model.Product) error {
	for i := range m.products {
		if m.products[i].ID == p.ID {
			p.UpdatedAt = time.Now().UTC()
			m.products[i] = *p
			return nil
		}
	}
	return appErrors.NewProductNotFound(p.ID)
}

func (m *MockProductRepo) Delete(ctx context.Context, id int) error {
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return appErrors.NewProductNotFound(id)
}
