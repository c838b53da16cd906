package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/journeyman-se/vargar-vatten-shop/internal/config"
	"github.com/journeyman-se/vargar-vatten-shop/internal/payment"
	"github.com/journeyman-se/vargar-vatten-shop/internal/validation"
)

// PaymentHandler serves the Swish payment request for the order form's
// payment dialog: the URI as JSON for the link, and the same URI rendered as
// a QR code. Both are pure local construction; Swish is never contacted.
type PaymentHandler struct {
	cfg config.PaymentConfig
	log *slog.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(cfg config.PaymentConfig, log *slog.Logger) *PaymentHandler {
	return &PaymentHandler{cfg: cfg, log: log}
}

// PaymentResponse carries the payment request for the dialog link.
type PaymentResponse struct {
	URI      string `json:"uri"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

// Request handles GET /api/payment?copies=N&name=...
func (h *PaymentHandler) Request(w http.ResponseWriter, r *http.Request) {
	copies, name, ok := h.params(w, r)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, PaymentResponse{
		URI:      payment.RequestURI(h.cfg.SwishNumber, h.cfg.UnitPrice, copies, name),
		Amount:   payment.Total(h.cfg.UnitPrice, copies),
		Currency: payment.Currency,
	}, h.log)
}

// QRCode handles GET /api/qr?copies=N&name=...
func (h *PaymentHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	copies, name, ok := h.params(w, r)
	if !ok {
		return
	}

	uri := payment.RequestURI(h.cfg.SwishNumber, h.cfg.UnitPrice, copies, name)
	img, err := payment.QRPNG(uri)
	if err != nil {
		h.log.Error("failed to render payment qr", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img); err != nil {
		h.log.Error("failed to write qr response", "error", err)
	}
}

func (h *PaymentHandler) params(w http.ResponseWriter, r *http.Request) (int, string, bool) {
	copies, err := strconv.Atoi(r.URL.Query().Get("copies"))
	if err != nil || copies < validation.MinCopies || copies > validation.MaxCopies {
		WriteError(w, http.StatusBadRequest, "Kolla antalet", h.log)
		return 0, "", false
	}
	return copies, r.URL.Query().Get("name"), true
}
