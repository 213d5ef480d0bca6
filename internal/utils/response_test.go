package utils_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/catalog-backend/internal/errors"
	"github.com/unclebandit/catalog-backend/internal/utils"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestSendJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	utils.SendJSONResponse(w, utils.Envelope{"message": "ok"}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
}

func TestHandleError(t *testing.T) {
	log, hook := test.NewNullLogger()

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", appErrors.NewValidation("city", "City must be 50 characters or less"), http.StatusBadRequest, "City must be 50 characters or less"},
		{"not found", appErrors.NewProductNotFound(9), http.StatusNotFound, "Product not found"},
		{"internal", errors.New("pq: connection refused to /var/run/postgres"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			utils.HandleError(w, log, tc.err)

			assert.Equal(t, tc.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.message, body["message"])
		})
	}

	assert.Len(t, hook.AllEntries(), 1)
}
