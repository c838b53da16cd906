package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/journeyman-se/vargar-vatten-shop/internal/form"
	"github.com/journeyman-se/vargar-vatten-shop/internal/models"
	"github.com/journeyman-se/vargar-vatten-shop/internal/validation"
)

// ValidateHandler runs the canonical field validators for the order form
// page, which delegates blur-time validation here instead of duplicating the
// rules in the browser.
type ValidateHandler struct {
	log *slog.Logger
}

// NewValidateHandler creates a new validate handler
func NewValidateHandler(log *slog.Logger) *ValidateHandler {
	return &ValidateHandler{log: log}
}

// ValidateRequest asks for one field to be checked, or the whole order when
// Field is empty.
type ValidateRequest struct {
	Field string       `json:"field,omitempty"`
	Order models.Order `json:"order"`
}

// ValidateResponse reports the outcome. Errors maps field name to message;
// CanSubmit mirrors the pay button's enabled state.
type ValidateResponse struct {
	Errors    map[string]string `json:"errors"`
	CanSubmit bool              `json:"canSubmit"`
}

// Validate handles POST /api/validate
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	st := form.FromOrder(req.Order)

	resp := ValidateResponse{
		Errors:    map[string]string{},
		CanSubmit: st.CanSubmit(),
	}

	if req.Field != "" {
		if msg := validation.Field(req.Field, req.Order); msg != "" {
			resp.Errors[req.Field] = msg
		}
	} else {
		resp.Errors = st.Errors()
	}

	WriteJSON(w, http.StatusOK, resp, h.log)
}
