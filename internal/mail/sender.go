package mail

import (
	"context"
	"fmt"
)

// Sender delivers one order notification. Implementations talk to an external
// delivery provider; delivery is single-shot with no retries and no
// confirmation beyond the provider accepting the request.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ProviderError is a structured rejection from the delivery provider. Body
// carries the provider's diagnostic response and is meant for server-side
// logs, never for the HTTP response.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("delivery provider rejected message with status %d", e.StatusCode)
}
