// internal/api/rest/handler/invoice_handler.go

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/pub-invoicing/internal/model"
	"github.com/pub-invoicing/pkg/invoice"
	"github.com/pub-invoicing/pkg/money"
	"go.uber.org/zap"
)

const (
	maxBodySize = 1 << 20

	FormatText = "text"
	FormatPDF  = "pdf"
)

// InvoiceHandler serves invoice rendering and budget checks.
type InvoiceHandler struct {
	service *invoice.OrderService
}

// NewInvoiceHandler creates an InvoiceHandler backed by service.
func NewInvoiceHandler(service *invoice.OrderService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// GenerateInvoice godoc
//
//	@Summary	Render the invoice for a pub
//	@Tags		invoices
//	@Accept		json
//	@Produce	plain
//	@Produce	application/pdf
//	@Param		request	body		model.InvoiceRequest	true	"Pub and beer orders"
//	@Param		format	query		string					false	"text (default) or pdf"
//	@Success	200		{string}	string
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/invoices [post]
func (h *InvoiceHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	var req model.InvoiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatPDF {
		WriteErrorResponse(w, http.StatusBadRequest, "unsupported format "+strconv.Quote(format))
		return
	}

	orders, err := req.Orders.ToBeerOrders()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if format == FormatText {
		text, err := h.service.GenerateInvoice(req.Pub, orders)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(text))
		return
	}

	inv, err := invoice.NewInvoice(req.Pub, orders)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	pdf, err := invoice.RenderPDF(inv)
	if err != nil {
		zap.L().Error("error while rendering invoice pdf", zap.String("pub", req.Pub), zap.Error(err))
		WriteErrorResponse(w, http.StatusInternalServerError, "failed to render invoice")
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=invoice.pdf")
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// CheckBudget godoc
//
//	@Summary	Check whether orders exceed a budget
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Param		request	body		model.BudgetRequest	true	"Beer orders and budget"
//	@Success	200		{object}	model.BudgetResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/budget-checks [post]
func (h *InvoiceHandler) CheckBudget(w http.ResponseWriter, r *http.Request) {
	var req model.BudgetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Budget == nil {
		WriteErrorResponse(w, http.StatusBadRequest, "budget is required")
		return
	}

	orders, err := req.Orders.ToBeerOrders()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSONResponse(w, http.StatusOK, model.BudgetResponse{
		Total:      money.Format(orders.TotalCost()),
		Budget:     req.Budget.String(),
		OverBudget: h.service.IsOverBudget(orders, *req.Budget),
	})
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}

	return true
}

func writeDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, invoice.ErrInvalidArgument) {
		WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	zap.L().Error("unexpected error while processing orders", zap.Error(err))
	WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
}
