// internal/service/customer_service.go
package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	appErrors "github.com/unclebandit/catalog-backend/internal/errors"
	"github.com/unclebandit/catalog-backend/internal/model"
	"github.com/unclebandit/catalog-backend/internal/repository"
)

// CustomerInput carries the business fields of a create or update request.
// Empty strings mean "not supplied".
type CustomerInput struct {
	CompanyName  string `json:"company_name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	MobileNumber string `json:"mobile_number"`
}

type CustomerService struct {
	CustomerRepo repository.CustomerRepositoryInterface
}

type customerField struct {
	name   string
	label  string
	max    int
	value  func(in *CustomerInput) string
	assign func(c *model.Customer, v string)
}

// customerFields is ordered: the first failing field is the one reported.
var customerFields = []customerField{
	{"company_name", "Company name", 100,
		func(in *CustomerInput) string { return in.CompanyName },
		func(c *model.Customer, v string) { c.CompanyName = v }},
	{"address", "Address", 200,
		func(in *CustomerInput) string { return in.Address },
		func(c *model.Customer, v string) { c.Address = v }},
	{"city", "City", 50,
		func(in *CustomerInput) string { return in.City },
		func(c *model.Customer, v string) { c.City = v }},
	{"mobile_number", "Mobile number", 20,
		func(in *CustomerInput) string { return in.MobileNumber },
		func(c *model.Customer, v string) { c.MobileNumber = v }},
}

func checkLength(field, label, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return appErrors.NewValidation(field, fmt.Sprintf("%s must be %d characters or less", label, max))
	}
	return nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.CustomerRepo.List(ctx)
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*model.Customer, error) {
	return s.CustomerRepo.GetByID(ctx, id)
}

// CreateCustomer requires all four fields, then checks their lengths.
func (s *CustomerService) CreateCustomer(ctx context.Context, in CustomerInput) (*model.Customer, error) {
	for _, f := range customerFields {
		if f.value(&in) == "" {
			return nil, appErrors.NewValidation(f.name, "Missing required field: "+f.name)
		}
	}

	c := &model.Customer{}
	for _, f := range customerFields {
		v := f.value(&in)
		if err := checkLength(f.name, f.label, v, f.max); err != nil {
			return nil, err
		}
		f.assign(c, v)
	}

	if err := s.CustomerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCustomer overwrites only the fields supplied with a non-empty value.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, in CustomerInput) (*model.Customer, error) {
	c, err := s.CustomerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, f := range customerFields {
		v := f.value(&in)
		if v == "" {
			continue
		}
		if err := checkLength(f.name, f.label, v, f.max); err != nil {
			return nil, err
		}
		f.assign(c, v)
	}

	if err := s.CustomerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	if _, err := s.CustomerRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.CustomerRepo.Delete(ctx, id)
}
