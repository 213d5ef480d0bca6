// internal/service/product_service.go
package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	appErrors "github.com/unclebandit/catalog-backend/internal/errors"
	"github.com/unclebandit/catalog-backend/internal/model"
	"github.com/unclebandit/catalog-backend/internal/repository"
	"github.com/unclebandit/catalog-backend/internal/upload"
)

// ImageStore is the part of upload.Store the product service uses.
type ImageStore interface {
	Accepts(filename string) bool
	Save(filename string, src io.Reader) (*upload.Image, error)
	Remove(publicPaths ...string)
}

// ImageUpload is an image file attached to a product request.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ProductInput carries the form fields of a create or update request. Price
// is kept as the raw submitted text.
type ProductInput struct {
	ProductName string
	Price       string
	ProductType string
	Image       *ImageUpload
}

type ProductService struct {
	ProductRepo repository.ProductRepositoryInterface
	Images      ImageStore
	Log         logrus.FieldLogger
}

const (
	maxProductName = 100
	maxProductType = 50
)

// parsePrice accepts any decimal number that is still greater than zero once
// rounded to cents.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, appErrors.NewValidation("price", "Price must be a valid number")
	}
	price = price.Round(2)
	if !price.IsPositive() {
		return decimal.Zero, appErrors.NewValidation("price", "Price must be a positive number")
	}
	return price, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.ProductRepo.List(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	return s.ProductRepo.GetByID(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error) {
	switch {
	case in.ProductName == "":
		return nil, appErrors.NewValidation("product_name", "Product name is required")
	case in.Price == "":
		return nil, appErrors.NewValidation("price", "Price is required")
	case in.ProductType == "":
		return nil, appErrors.NewValidation("product_type", "Product type is required")
	}

	if err := checkLength("product_name", "Product name", in.ProductName, maxProductName); err != nil {
		return nil, err
	}
	if err := checkLength("product_type", "Product type", in.ProductType, maxProductType); err != nil {
		return nil, err
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		ProductName: in.ProductName,
		Price:       price,
		ProductType: in.ProductType,
	}

	var img *upload.Image
	if in.Image != nil {
		img = s.saveImage(in.Image)
		if img != nil {
			p.SetImage(img.Filename, img.Path, img.ThumbnailPath)
		}
	}

	if err := s.ProductRepo.Create(ctx, p); err != nil {
		if img != nil {
			s.Images.Remove(img.Path, img.ThumbnailPath)
		}
		return nil, err
	}
	return p, nil
}

// UpdateProduct overwrites only the fields supplied with a non-empty value.
// A new valid image replaces the old files, which are removed first.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, in ProductInput) (*model.Product, error) {
	p, err := s.ProductRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ProductName != "" {
		if err := checkLength("product_name", "Product name", in.ProductName, maxProductName); err != nil {
			return nil, err
		}
		p.ProductName = in.ProductName
	}

	if in.Price != "" {
		price, err := parsePrice(in.Price)
		if err != nil {
			return nil, err
		}
		p.Price = price
	}

	if in.ProductType != "" {
		if err := checkLength("product_type", "Product type", in.ProductType, maxProductType); err != nil {
			return nil, err
		}
		p.ProductType = in.ProductType
	}

	if in.Image != nil && s.Images.Accepts(in.Image.Filename) {
		s.removeImage(p)
		if img := s.saveImage(in.Image); img != nil {
			p.SetImage(img.Filename, img.Path, img.ThumbnailPath)
		} else {
			// The old files are gone, so the record must not point at them.
			p.ClearImage()
		}
	}

	if err := s.ProductRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct removes the record and then, best effort, its image files.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	p, err := s.ProductRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ProductRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeImage(p)
	return nil
}

// saveImage stores the upload, returning nil when it was skipped or failed.
func (s *ProductService) saveImage(up *ImageUpload) *upload.Image {
	img, err := s.Images.Save(up.Filename, up.Content)
	if errors.Is(err, upload.ErrUnsupportedMedia) {
		s.Log.WithField("filename", up.Filename).Debug("ignoring image with unsupported extension")
		return nil
	}
	if err != nil {
		s.Log.WithError(err).WithField("filename", up.Filename).Warn("failed to store product image")
		return nil
	}
	return img
}

func (s *ProductService) removeImage(p *model.Product) {
	var paths []string
	if p.ImagePath != nil {
		paths = append(paths, *p.ImagePath)
	}
	if p.ThumbnailPath != nil {
		paths = append(paths, *p.ThumbnailPath)
	}
	if len(paths) > 0 {
		s.Images.Remove(paths...)
	}
}
