package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/journeyman-se/vargar-vatten-shop/internal/models"
)

// Limits for the order fields. The customer-facing messages are Swedish, like
// the rest of the form.
const (
	NameMinLength    = 3
	NameMaxLength    = 50
	CommentMaxLength = 150
	MinCopies        = 1
	MaxCopies        = 10
)

var (
	// Permissive on purpose: anything of the shape something@something.
	emailPattern = regexp.MustCompile(`^\S+@\S+$`)
	// Exactly five digits, each optionally surrounded by whitespace.
	zipPattern = regexp.MustCompile(`^\s*(\d\s*){5}$`)
)

// Error describes a single invalid field.
type Error struct {
	Field   string
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Fields lists the order fields in form order.
var Fields = []string{"name", "email", "address", "zip", "city", "copies", "comment", "termsOfService"}

var validators = map[string]func(models.Order) string{
	"name":           validateName,
	"email":          validateEmail,
	"address":        validateAddress,
	"zip":            validateZip,
	"city":           validateCity,
	"copies":         validateCopies,
	"comment":        validateComment,
	"termsOfService": validateTerms,
}

// Validate runs every field validator and returns a field→message map of all
// failures. An empty map means the order can be submitted.
func Validate(o models.Order) map[string]string {
	errs := make(map[string]string)
	for _, field := range Fields {
		if msg := validators[field](o); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// Field validates a single field by name and returns its message, or "" when
// the field is valid. Unknown field names are treated as valid.
func Field(name string, o models.Order) string {
	v, ok := validators[name]
	if !ok {
		return ""
	}
	return v(o)
}

func validateName(o models.Order) string {
	n := utf8.RuneCountInString(o.Name)
	if n < NameMinLength || n > NameMaxLength {
		return "Ogiltigt namn"
	}
	return ""
}

func validateEmail(o models.Order) string {
	if !emailPattern.MatchString(o.Email) {
		return "Ogiltig email"
	}
	return ""
}

func validateAddress(o models.Order) string {
	if strings.TrimSpace(o.Address) == "" {
		return "Obligatoriskt fält"
	}
	return ""
}

func validateZip(o models.Order) string {
	if !zipPattern.MatchString(o.Zip) {
		return "Ogiltigt postnummer"
	}
	return ""
}

func validateCity(o models.Order) string {
	if strings.TrimSpace(o.City) == "" {
		return "Obligatoriskt fält"
	}
	return ""
}

func validateCopies(o models.Order) string {
	if o.Copies < MinCopies || o.Copies > MaxCopies {
		return "Kolla antalet"
	}
	return ""
}

func validateComment(o models.Order) string {
	if utf8.RuneCountInString(o.Comment) > CommentMaxLength {
		return "Skriv lite kortare!"
	}
	return ""
}

func validateTerms(o models.Order) string {
	if !o.TermsOfService {
		return "Du måste samtycka för att kunna beställa"
	}
	return ""
}
