package tenant

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes tenant HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/tenants", func(r chi.Router) {
		r.Get("/", h.listTenants)
		r.Get("/current", h.currentTenant)
		r.Get("/{id}", h.getTenant)
	})
}

func (h *Handler) listTenants(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.List())
}

func (h *Handler) currentTenant(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Resolve(r.Host))
}

func (h *Handler) getTenant(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, c)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
