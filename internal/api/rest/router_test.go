package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pub-invoicing/pkg/invoice"
	"github.com/stretchr/testify/assert"
)

func TestNewRouter(t *testing.T) {
	router := NewRouter(invoice.NewOrderService(), true)

	body := `{"pub":"Corner","orders":[{"beer":"Stout","quantity":2,"unit_price":3.5}],"budget":5}`

	cases := map[string]struct {
		method         string
		target         string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		"Health":       {http.MethodGet, "/health", "", http.StatusOK, `"status":"ok"`},
		"Invoice":      {http.MethodPost, "/invoices", body, http.StatusOK, "Total: 7.0€"},
		"Budget":       {http.MethodPost, "/budget-checks", body, http.StatusOK, `"over_budget":true`},
		"WrongMethod":  {http.MethodGet, "/invoices", "", http.StatusMethodNotAllowed, ""},
		"UnknownRoute": {http.MethodGet, "/orders", "", http.StatusNotFound, ""},
		"Swagger":      {http.MethodGet, "/swagger/doc.json", "", http.StatusOK, "Pub Invoicing API"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}

func TestNewRouter_SwaggerDisabled(t *testing.T) {
	router := NewRouter(invoice.NewOrderService(), false)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
