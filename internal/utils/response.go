package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	appErrors "github.com/unclebandit/catalog-backend/internal/errors"
)

// Envelope is the JSON object every API response is written as.
type Envelope map[string]interface{}

// SendJSONResponse writes data with success=true merged in.
func SendJSONResponse(w http.ResponseWriter, data Envelope, statusCode int) {
	body := Envelope{"success": true}
	for k, v := range data {
		body[k] = v
	}
	writeJSON(w, body, statusCode)
}

// SendError writes {success:false, message} with the given status.
func SendError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, Envelope{"success": false, "message": message}, statusCode)
}

// HandleError maps application errors onto HTTP statuses. Anything that is
// not a validation or not-found error is logged and reported as a 500
// without details.
func HandleError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	var validation *appErrors.ValidationError
	var notFound *appErrors.NotFoundError

	switch {
	case errors.As(err, &validation):
		SendError(w, validation.Message, http.StatusBadRequest)
	case errors.As(err, &notFound):
		SendError(w, notFound.Error(), http.StatusNotFound)
	default:
		log.WithError(err).Error("request failed")
		SendError(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, body interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
