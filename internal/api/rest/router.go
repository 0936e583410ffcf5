// internal/api/rest/router.go

package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	_ "github.com/pub-invoicing/internal/api/docs"
	"github.com/pub-invoicing/internal/api/rest/handler"
	"github.com/pub-invoicing/internal/api/rest/middleware"
	"github.com/pub-invoicing/pkg/invoice"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires every route of the invoice API.
func NewRouter(service *invoice.OrderService, swaggerEnabled bool) *mux.Router {
	h := handler.NewInvoiceHandler(service)

	r := mux.NewRouter()
	r.Use(middleware.Logger)

	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	r.HandleFunc("/invoices", h.GenerateInvoice).Methods(http.MethodPost)
	r.HandleFunc("/budget-checks", h.CheckBudget).Methods(http.MethodPost)

	if swaggerEnabled {
		r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	return r
}
