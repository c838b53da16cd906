package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/journeyman-se/vargar-vatten-shop/internal/models"
)

func TestValidateHandler(t *testing.T) {
	valid := models.Order{
		Name:           "Ann Andersson",
		Email:          "ann@example.se",
		Address:        "Gatan 123",
		Zip:            "12345",
		City:           "Storstad",
		Copies:         1,
		TermsOfService: true,
	}

	tests := []struct {
		name          string
		req           ValidateRequest
		wantCanSubmit bool
		wantErrors    []string
	}{
		{
			name:          "fully valid order",
			req:           ValidateRequest{Order: valid},
			wantCanSubmit: true,
		},
		{
			name: "single field check",
			req: ValidateRequest{
				Field: "zip",
				Order: func() models.Order { o := valid; o.Zip = "1234"; return o }(),
			},
			wantCanSubmit: false,
			wantErrors:    []string{"zip"},
		},
		{
			name: "single field check ignores other invalid fields",
			req: ValidateRequest{
				Field: "zip",
				Order: func() models.Order { o := valid; o.Name = "A"; return o }(),
			},
			wantCanSubmit: false,
			wantErrors:    nil,
		},
		{
			name: "whole order check reports every failure",
			req: ValidateRequest{
				Order: func() models.Order { o := valid; o.Name = "A"; o.TermsOfService = false; return o }(),
			},
			wantCanSubmit: false,
			wantErrors:    []string{"name", "termsOfService"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			handler := NewValidateHandler(newTestLogger(&logBuf))

			body, err := json.Marshal(tt.req)
			if err != nil {
				t.Fatalf("failed to marshal request: %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.Validate(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}

			var resp ValidateResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.CanSubmit != tt.wantCanSubmit {
				t.Errorf("canSubmit = %v, want %v", resp.CanSubmit, tt.wantCanSubmit)
			}
			if len(resp.Errors) != len(tt.wantErrors) {
				t.Errorf("errors = %v, want keys %v", resp.Errors, tt.wantErrors)
			}
			for _, field := range tt.wantErrors {
				if resp.Errors[field] == "" {
					t.Errorf("missing error for field %s", field)
				}
			}
		})
	}
}

func TestValidateHandler_BadBody(t *testing.T) {
	var logBuf bytes.Buffer
	handler := NewValidateHandler(newTestLogger(&logBuf))

	req := httptest.NewRequest(http.MethodPost, "/api/validate", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	handler.Validate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
