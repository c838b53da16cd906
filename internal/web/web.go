package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/journeyman-se/vargar-vatten-shop/internal/models"
	"github.com/journeyman-se/vargar-vatten-shop/internal/validation"
)

//go:embed templates/*.html static
var content embed.FS

// PageData feeds the order form template.
type PageData struct {
	UnitPrice int
	MinCopies int
	MaxCopies int
	Defaults  models.Order
}

// Handler serves the order form page and its static assets. The page is a
// single fixed template shipped inside the binary.
type Handler struct {
	tpl  *template.Template
	data PageData
	log  *slog.Logger
}

// New parses the embedded templates and prepares the page data.
func New(unitPrice int, log *slog.Logger) (*Handler, error) {
	tpl, err := template.ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Handler{
		tpl: tpl,
		data: PageData{
			UnitPrice: unitPrice,
			MinCopies: validation.MinCopies,
			MaxCopies: validation.MaxCopies,
			Defaults:  models.DefaultOrder(),
		},
		log: log,
	}, nil
}

// Page handles GET /
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tpl.ExecuteTemplate(w, "index.html", h.data); err != nil {
		h.log.Error("failed to render order form", "error", err)
	}
}

// Static returns a handler serving the embedded JS and CSS under /static/.
func (h *Handler) Static() http.Handler {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// The static directory is embedded at compile time; a failure here
		// means a broken build, not a runtime condition.
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
