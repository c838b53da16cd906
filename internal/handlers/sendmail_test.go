package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/journeyman-se/vargar-vatten-shop/internal/mail"
)

// fakeSender records the last message and answers with a scripted error.
type fakeSender struct {
	err  error
	sent []mail.Message
}

func (f *fakeSender) Send(ctx context.Context, msg mail.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestSendMailHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		senderErr      error
		expectedStatus int
		expectedBody   string
		wantSent       int
	}{
		{
			name:           "well-formed order is accepted",
			body:           `{"name":"Ann","address":"Gatan 1","email":"ann@example.se","city":"Storstad","zip":"12345","copies":2,"comment":"","termsOfService":true}`,
			expectedStatus: http.StatusAccepted,
			expectedBody:   "Message sent",
			wantSent:       1,
		},
		{
			name:           "truncated JSON",
			body:           `{"name":"Ann","copies":2`,
			expectedStatus: http.StatusBadRequest,
			wantSent:       0,
		},
		{
			name:           "non-JSON body",
			body:           `not json at all`,
			expectedStatus: http.StatusBadRequest,
			wantSent:       0,
		},
		{
			name:           "provider rejection",
			body:           `{"name":"Ann","copies":2}`,
			senderErr:      &mail.ProviderError{StatusCode: 401, Body: `{"errors":[{"message":"invalid api key"}]}`},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   (&mail.ProviderError{StatusCode: 401}).Error(),
			wantSent:       1,
		},
		{
			name:           "unexpected sender error still accepted",
			body:           `{"name":"Ann","copies":2}`,
			senderErr:      context.DeadlineExceeded,
			expectedStatus: http.StatusAccepted,
			expectedBody:   "Message sent",
			wantSent:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			sender := &fakeSender{err: tt.senderErr}
			handler := NewSendMailHandler(sender, "seller@example.se", "noreply@example.se", newTestLogger(&logBuf))

			req := httptest.NewRequest(http.MethodPost, "/api/sendmail", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.SendMail(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedBody != "" && strings.TrimSpace(w.Body.String()) != tt.expectedBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.expectedBody)
			}

			if len(sender.sent) != tt.wantSent {
				t.Errorf("sent = %d messages, want %d", len(sender.sent), tt.wantSent)
			}
		})
	}
}

func TestSendMailHandler_MessageContents(t *testing.T) {
	var logBuf bytes.Buffer
	sender := &fakeSender{}
	handler := NewSendMailHandler(sender, "seller@example.se", "noreply@example.se", newTestLogger(&logBuf))

	body := `{"name":"Ann","copies":2,"zip":"12345"}`
	req := httptest.NewRequest(http.MethodPost, "/api/sendmail", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.SendMail(w, req)

	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d messages, want 1", len(sender.sent))
	}

	msg := sender.sent[0]
	if msg.To != "seller@example.se" {
		t.Errorf("To = %q, want seller@example.se", msg.To)
	}
	if msg.Subject != "Vargar&Vatten Beställning 2 ex från Ann" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "<tr><td>zip</td><td>12345</td></tr>") {
		t.Errorf("HTML body missing zip row: %q", msg.HTML)
	}
}

func TestSendMailHandler_ProviderBodyOnlyInLogs(t *testing.T) {
	const providerBody = `{"errors":[{"message":"quota exceeded"}]}`

	var logBuf bytes.Buffer
	sender := &fakeSender{err: &mail.ProviderError{StatusCode: 429, Body: providerBody}}
	handler := NewSendMailHandler(sender, "seller@example.se", "noreply@example.se", newTestLogger(&logBuf))

	req := httptest.NewRequest(http.MethodPost, "/api/sendmail", strings.NewReader(`{"name":"Ann"}`))
	w := httptest.NewRecorder()

	handler.SendMail(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if strings.Contains(w.Body.String(), "quota exceeded") {
		t.Error("provider response body leaked into the HTTP response")
	}
	if !strings.Contains(logBuf.String(), "quota exceeded") {
		t.Error("provider response body missing from server logs")
	}
}
