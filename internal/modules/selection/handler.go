package selection

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cathedralnet/storefront/internal/modules/fulfillment"
)

// Handler exposes the admin catalog selection endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, guard func(http.Handler) http.Handler) {
	r.Route("/api/v1/admin/catalog", func(r chi.Router) {
		r.Use(guard)
		r.Get("/", h.listCatalog)
		r.Post("/toggle", h.toggle)
		r.Post("/select-all", h.selectAll)
		r.Post("/deselect-all", h.deselectAll)
		r.Post("/sync", h.sync)
	})
}

func (h *Handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.service.List(r.Context(), r.URL.Query().Get("q"), filter)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, view)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ids, err := h.service.Toggle(r.Context(), req.ProductID)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"selected_product_ids": ids})
}

func (h *Handler) selectAll(w http.ResponseWriter, r *http.Request) {
	var req SelectAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	filter, err := ParseFilter(req.Filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ids, err := h.service.SelectAllVisible(r.Context(), req.Query, filter)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"selected_product_ids": ids})
}

func (h *Handler) deselectAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeselectAll(r.Context()); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"selected_product_ids": []int{}})
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Sync(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, result)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, fulfillment.ErrNotConfigured) {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
