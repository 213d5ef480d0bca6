package service_test

import (
	"context"
	"io"
	"sync"
	"time"

	appErrors "github.com/unclebandit/catalog-backend/internal/errors"
	"github.com/unclebandit/catalog-backend/internal/model"
	"github.com/unclebandit/catalog-backend/internal/upload"
)

// --- Mock Repositories ---

type MockCustomerRepo struct {
	mu        sync.Mutex
	customers map[int]model.Customer
	nextID    int
	creates   int
}

func NewMockCustomerRepo() *MockCustomerRepo {
	return &MockCustomerRepo{customers: map[int]model.Customer{}, nextID: 1}
}

func (m *MockCustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Customer{}
	for id := 1; id < m.nextID; id++ {
		if c, ok := m.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, appErrors.NewCustomerNotFound(id)
	}
	return &c, nil
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	c.ID = m.nextID
	c.CreatedAt, c.UpdatedAt = now, now
	m.nextID++
	m.creates++
	m.customers[c.ID] = *c
	return nil
}

func (m *MockCustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[c.ID]; !ok {
		return appErrors.NewCustomerNotFound(c.ID)
	}
	c.UpdatedAt = time.Now().UTC()
	m.customers[c.ID] = *c
	return nil
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return appErrors.NewCustomerNotFound(id)
	}
	delete(m.customers, id)
	return nil
}

type MockProductRepo struct {
	mu        sync.Mutex
	products  map[int]model.Product
	nextID    int
	createErr error
}

func NewMockProductRepo() *MockProductRepo {
	return &MockProductRepo{products: map[int]model.Product{}, nextID: 1}
}

func (m *MockProductRepo) List(ctx context.Context) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Product{}
	for id := 1; id < m.nextID; id++ {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id int) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, appErrors.NewProductNotFound(id)
	}
	return &p, nil
}

func (m *MockProductRepo) Create(ctx context.Context, p *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	now := time.Now().UTC()
	p.ID = m.nextID
	p.CreatedAt, p.UpdatedAt = now, now
	m.nextID++
	m.products[p.ID] = *p
	return nil
}

func (m *MockProductRepo) Update(ctx context.Context, p *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[p.ID]; !ok {
		return appErrors.NewProductNotFound(p.ID)
	}
	p.UpdatedAt = time.Now().UTC()
	m.products[p.ID] = *p
	return nil
}

func (m *MockProductRepo) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return appErrors.NewProductNotFound(id)
	}
	delete(m.products, id)
	return nil
}

// MockImageStore records removals and hands out predictable paths.
type MockImageStore struct {
	saved   []string
	removed []string
	saveErr error
}

func (m *MockImageStore) Accepts(filename string) bool {
	return upload.NewStore(upload.Config{}, nil).Accepts(filename)
}

func (m *MockImageStore) Save(filename string, src io.Reader) (*upload.Image, error) {
	if !m.Accepts(filename) {
		return nil, upload.ErrUnsupportedMedia
	}
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	if _, err := io.ReadAll(src); err != nil {
		return nil, err
	}
	m.saved = append(m.saved, filename)
	return &upload.Image{
		Filename:      filename,
		Path:          upload.OriginalURLPrefix + "u_" + filename,
		ThumbnailPath: upload.ThumbnailURLPrefix + "thumb_u_" + filename,
	}, nil
}

func (m *MockImageStore) Remove(publicPaths ...string) {
	m.removed = append(m.removed, publicPaths...)
}
