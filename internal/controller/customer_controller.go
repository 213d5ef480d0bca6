// internal/controller/customer_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	appErrors "github.com/unclebandit/catalog-backend/internal/errors"
	"github.com/unclebandit/catalog-backend/internal/model"
	"github.com/unclebandit/catalog-backend/internal/service"
	"github.com/unclebandit/catalog-backend/internal/utils"
)

type CustomerController struct {
	CustomerService *service.CustomerService
	Log             logrus.FieldLogger
}

// Routes registers the customer endpoints on a mounted sub-router.
func (c *CustomerController) Routes(r chi.Router) {
	r.Get("/", c.ListCustomers)
	r.Post("/", c.CreateCustomer)
	r.Get("/{id}", c.GetCustomer)
	r.Put("/{id}", c.UpdateCustomer)
	r.Delete("/{id}", c.DeleteCustomer)
}

// urlID parses the {id} URL parameter. Ids that are not integers cannot
// name a record, so they resolve to notFound.
func urlID(r *http.Request, notFound func(int) error) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, notFound(0)
	}
	return id, nil
}

func customerList(customers []model.Customer) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(customers))
	for _, c := range customers {
		out = append(out, c.ToMap())
	}
	return out
}

func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.CustomerService.ListCustomers(r.Context())
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}
	utils.SendJSONResponse(w, utils.Envelope{"customers": customerList(customers)}, http.StatusOK)
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, appErrors.NewCustomerNotFound)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	customer, err := c.CustomerService.GetCustomer(r.Context(), id)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}
	utils.SendJSONResponse(w, utils.Envelope{"customer": customer.ToMap()}, http.StatusOK)
}

func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var body service.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := c.CustomerService.CreateCustomer(r.Context(), body)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	c.Log.WithField("customer_id", customer.ID).Info("customer created")
	utils.SendJSONResponse(w, utils.Envelope{
		"message":  "Customer created successfully",
		"customer": customer.ToMap(),
	}, http.StatusCreated)
}

func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, appErrors.NewCustomerNotFound)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	var body service.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := c.CustomerService.UpdateCustomer(r.Context(), id, body)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	utils.SendJSONResponse(w, utils.Envelope{
		"message":  "Customer updated successfully",
		"customer": customer.ToMap(),
	}, http.StatusOK)
}

func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, appErrors.NewCustomerNotFound)
	if err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	if err := c.CustomerService.DeleteCustomer(r.Context(), id); err != nil {
		utils.HandleError(w, c.Log, err)
		return
	}

	c.Log.WithField("customer_id", id).Info("customer deleted")
	utils.SendJSONResponse(w, utils.Envelope{"message": "Customer deleted successfully"}, http.StatusOK)
}
