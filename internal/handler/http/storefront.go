package http

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/httputil"
)

//go:embed templates/*.html
var templateFiles embed.FS

var (
	indexTmpl = template.Must(template.ParseFS(templateFiles, "templates/layout.html", "templates/index.html"))
	cartTmpl  = template.Must(template.ParseFS(templateFiles, "templates/layout.html", "templates/cart.html"))
)

// CatalogReader lists catalog items for the storefront page.
type CatalogReader interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
}

// StorefrontHandler renders the HTML pages the cart controller runs on.
type StorefrontHandler struct {
	catalog CatalogReader
	logger  *slog.Logger
}

// NewStorefrontHandler creates a new page handler.
func NewStorefrontHandler(catalog CatalogReader, logger *slog.Logger) *StorefrontHandler {
	return &StorefrontHandler{catalog: catalog, logger: logger}
}

type pageData struct {
	Title string
	Items []domain.Item
}

// Index handles GET /
func (h *StorefrontHandler) Index(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListItems(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	h.render(w, r, indexTmpl, "index.html", pageData{Title: "Storefront", Items: items})
}

// Cart handles GET /cart
func (h *StorefrontHandler) Cart(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, cartTmpl, "cart.html", pageData{Title: "Your Cart"})
}

func (h *StorefrontHandler) render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, name string, data pageData) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
