package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/journeyman-se/vargar-vatten-shop/internal/mail"
)

// SendMailHandler relays a submitted order to the seller by email. It is
// stateless: each request is parsed, formatted and dispatched on its own,
// with no queueing and no retries.
type SendMailHandler struct {
	sender mail.Sender
	to     string
	from   string
	log    *slog.Logger
}

// NewSendMailHandler creates a new sendmail handler
func NewSendMailHandler(sender mail.Sender, to, from string, log *slog.Logger) *SendMailHandler {
	return &SendMailHandler{
		sender: sender,
		to:     to,
		from:   from,
		log:    log,
	}
}

// SendMail handles POST /api/sendmail. The client has already validated the
// order fields, so the body is only parsed, never schema-checked.
func (h *SendMailHandler) SendMail(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Error("failed to read request body", "error", err)
		WriteText(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	fields, err := mail.ParseFields(body)
	if err != nil {
		h.log.Error("failed to parse order body", "error", err)
		WriteText(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	msg := mail.NewMessage(h.to, h.from, fields)

	if err := h.sender.Send(r.Context(), msg); err != nil {
		var perr *mail.ProviderError
		if errors.As(err, &perr) {
			// The provider's diagnostic body stays in the logs; the caller
			// only gets the error message.
			h.log.Error("delivery provider rejected order mail",
				"status", perr.StatusCode,
				"body", perr.Body,
			)
			WriteText(w, http.StatusInternalServerError, perr.Error(), h.log)
			return
		}

		// Anything else is logged but still answered as accepted, matching
		// the long-standing behavior clients of this endpoint have seen.
		h.log.Error("unexpected error sending order mail", "error", err)
	} else {
		h.log.Info("order mail dispatched", "subject", msg.Subject)
	}

	WriteText(w, http.StatusAccepted, "Message sent", h.log)
}
