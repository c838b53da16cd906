package form

import (
	"github.com/journeyman-se/vargar-vatten-shop/internal/models"
	"github.com/journeyman-se/vargar-vatten-shop/internal/validation"
)

// Phase tracks where the customer is in the payment and submission flow.
type Phase int

const (
	// Idle: filling in the form.
	Idle Phase = iota
	// AwaitingConfirmation: payment dialog open, waiting for "payment done".
	AwaitingConfirmation
	// Submitting: order POST in flight, confirmation control disabled.
	Submitting
)

// State is the order form between page load and a completed submission:
// the current values, which fields the customer has visited, and their
// error messages. Fields are validated on blur, and again on every change
// once visited.
type State struct {
	Values  models.Order
	phase   Phase
	touched map[string]bool
	errs    map[string]string
}

// New returns a fresh form with default values and no visited fields.
func New() *State {
	return &State{
		Values:  models.DefaultOrder(),
		touched: make(map[string]bool),
		errs:    make(map[string]string),
	}
}

// FromOrder returns a form holding the given values with every field already
// visited and validated, as after a full submission attempt.
func FromOrder(o models.Order) *State {
	s := New()
	s.Values = o
	for _, field := range validation.Fields {
		s.Blur(field)
	}
	return s
}

// Set updates one field value. Fields already visited are revalidated
// immediately; untouched fields keep quiet until their first blur.
func (s *State) Set(field string, value any) {
	switch field {
	case "name":
		if v, ok := value.(string); ok {
			s.Values.Name = v
		}
	case "email":
		if v, ok := value.(string); ok {
			s.Values.Email = v
		}
	case "address":
		if v, ok := value.(string); ok {
			s.Values.Address = v
		}
	case "zip":
		if v, ok := value.(string); ok {
			s.Values.Zip = v
		}
	case "city":
		if v, ok := value.(string); ok {
			s.Values.City = v
		}
	case "copies":
		if v, ok := value.(int); ok {
			s.Values.Copies = v
		}
	case "comment":
		if v, ok := value.(string); ok {
			s.Values.Comment = v
		}
	case "termsOfService":
		if v, ok := value.(bool); ok {
			s.Values.TermsOfService = v
		}
	default:
		return
	}

	if s.touched[field] {
		s.validate(field)
	}
}

// Blur marks a field visited and validates it.
func (s *State) Blur(field string) {
	s.touched[field] = true
	s.validate(field)
}

func (s *State) validate(field string) {
	if msg := validation.Field(field, s.Values); msg != "" {
		s.errs[field] = msg
	} else {
		delete(s.errs, field)
	}
}

// Err returns the current error message for a field, "" if none.
func (s *State) Err(field string) string {
	return s.errs[field]
}

// Errors returns a copy of all current field errors.
func (s *State) Errors() map[string]string {
	out := make(map[string]string, len(s.errs))
	for k, v := range s.errs {
		out[k] = v
	}
	return out
}

// CanSubmit reports whether the pay action is enabled: every field valid,
// consent box included. It checks the whole order, not only visited fields.
func (s *State) CanSubmit() bool {
	return len(validation.Validate(s.Values)) == 0
}

// Phase returns the current submission phase.
func (s *State) Phase() Phase {
	return s.phase
}

// OpenPayment opens the payment dialog. Refused unless the form is
// submittable and idle.
func (s *State) OpenPayment() bool {
	if s.phase != Idle || !s.CanSubmit() {
		return false
	}
	s.phase = AwaitingConfirmation
	return true
}

// ClosePayment dismisses the dialog without submitting.
func (s *State) ClosePayment() {
	if s.phase == AwaitingConfirmation {
		s.phase = Idle
	}
}

// BeginSubmit marks the order POST in flight. Refused while a submission is
// already running or no dialog is open.
func (s *State) BeginSubmit() bool {
	if s.phase != AwaitingConfirmation {
		return false
	}
	s.phase = Submitting
	return true
}

// Succeed completes a submission: the dialog closes and the form resets.
func (s *State) Succeed() {
	if s.phase != Submitting {
		return
	}
	s.Reset()
}

// Fail returns to the open dialog with all values retained for retry.
func (s *State) Fail() {
	if s.phase != Submitting {
		return
	}
	s.phase = AwaitingConfirmation
}

// Reset returns every field to its default value and clears errors.
func (s *State) Reset() {
	s.Values = models.DefaultOrder()
	s.phase = Idle
	s.touched = make(map[string]bool)
	s.errs = make(map[string]string)
}
