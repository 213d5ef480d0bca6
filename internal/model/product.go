// internal/model/product.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int             `db:"id" json:"id"`
	ProductName   string          `db:"product_name" json:"product_name"`
	Price         decimal.Decimal `db:"price" json:"price"`
	ProductType   string          `db:"product_type" json:"product_type"`
	ImageFilename *string         `db:"image_filename" json:"image_filename"`
	ImagePath     *string         `db:"image_path" json:"image_path"`
	ThumbnailPath *string         `db:"thumbnail_path" json:"thumbnail_path"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// HasImage reports whether the product carries an uploaded image.
func (p Product) HasImage() bool {
	return p.ImagePath != nil || p.ThumbnailPath != nil
}

// SetImage sets all three image fields together.
func (p *Product) SetImage(filename, path, thumbnailPath string) {
	p.ImageFilename = &filename
	p.ImagePath = &path
	p.ThumbnailPath = &thumbnailPath
}

// ClearImage unsets all three image fields together.
func (p *Product) ClearImage() {
	p.ImageFilename = nil
	p.ImagePath = nil
	p.ThumbnailPath = nil
}

// ToMap returns the record as it is written in API responses. Price is a
// JSON number.
func (p Product) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":             p.ID,
		"product_name":   p.ProductName,
		"price":          p.Price.InexactFloat64(),
		"product_type":   p.ProductType,
		"image_filename": p.ImageFilename,
		"image_path":     p.ImagePath,
		"thumbnail_path": p.ThumbnailPath,
		"created_at":     isoTime(p.CreatedAt),
		"updated_at":     isoTime(p.UpdatedAt),
	}
}
