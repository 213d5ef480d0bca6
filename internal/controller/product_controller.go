// internal/controller/product_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	appErrors "github.com/unclebandit/catalog-backend/internal/errors"
	"github.com/unclebandit/catalog-backend/internal/model"
	"github.com/unclebandit/catalog-backend/internal/service"
	"github.com/unclebandit/catalog-backend/internal/utils"
)

const defaultMaxUploadBytes = 16 << 20

type ProductController struct {
	ProductService *service.ProductService
	Log            logrus.FieldLogger
	// MaxUploadBytes caps the request body of create and update.
	MaxUploadBytes int64
}

func (c *ProductController) Routes(r chi.Router) {
	r.Get("/", c.ListProducts)
	r.Post("/", c.CreateProduct)
	r.Get("/{id}", c.GetProduct)
	r.Put("/{id}", c.UpdateProduct)
	r.Delete("/{id}", c.DeleteProduct)
}

func productList(products []model.Product) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(products))
	for _, p := range products {
		out = append(out, p.ToMap())
	}
	return out
}

// parseProductForm reads the multipart (or url-encoded) form. The returned
// cleanup func must be called once the request is done.
func (c *ProductController) parseProductForm(w http.ResponseWriter, r *http.Request) (service.ProductInput, func(), error) {
	limit := c.MaxUploadBytes
	if limit <= 0 {
		limit = defaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	noop := func() {}
	if err := r.ParseMultipartForm(limit); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return service.ProductInput{}, noop, err
	}

	in := service.ProductInput{
		ProductName: r.FormValue("product_name"),
		Price:       r.FormValue("price"),
		ProductType: r.FormValue("product_type"),
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		if header.Filename != "" {
			in.Image = &service.ImageUpload{Filename: header.Filename, Content: file}
		}
		return in, func() {
			file.Close()
			if r.MultipartForm != nil {
				r.MultipartForm.RemoveAll()
			}
		}, nil
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return in, noop, nil
	default:
		return in, noop, err
	}
}

func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.ProductService.ListProducts(r.Context())
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}
	utils.SendJSONResponse(w, utils.Envelope{"products": productList(products)}, http.StatusOK)
}

func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, appErrors.NewProductNotFound)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	product, err := c.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}
	utils.SendJSONResponse(w, utils.Envelope{"product": product.ToMap()}, http.StatusOK)
}

func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	in, cleanup, err := c.parseProductForm(w, r)
	defer cleanup()
	if err != nil {
		c.Log.WithError(err).Debug("failed to parse product form")
		utils.SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product, err := c.ProductService.CreateProduct(r.Context(), in)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	c.Log.WithFields(logrus.Fields{
		"product_id": product.ID,
		"has_image":  product.HasImage(),
	}).Info("product created")
	utils.SendJSONResponse(w, utils.Envelope{
		"message": "Product created successfully",
		"product": product.ToMap(),
	}, http.StatusCreated)
}

func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, appErrors.NewProductNotFound)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	in, cleanup, err := c.parseProductForm(w, r)
	defer cleanup()
	if err != nil {
		c.Log.WithError(err).Debug("failed to parse product form")
		utils.SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product, err := c.ProductService.UpdateProduct(r.Context(), id, in)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	utils.SendJSONResponse(w, utils.Envelope{
		"message": "Product updated successfully",
		"product": product.ToMap(),
	}, http.StatusOK)
}

func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, appErrors.NewProductNotFound)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	if err := c.ProductService.DeleteProduct(r.Context(), id); err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	c.Log.WithField("product_id", id).Info("product deleted")
	utils.SendJSONResponse(w, utils.Envelope{"message": "Product deleted successfully"}, http.StatusOK)
}
