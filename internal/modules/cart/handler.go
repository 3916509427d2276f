package cart

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cathedralnet/storefront/internal/modules/tenant"
)

// Handler exposes cart HTTP endpoints. The tenant is resolved from the Host
// header; the cart id is chosen by the client and scoped to that tenant.
type Handler struct {
	service Service
	tenants tenant.Service
}

func NewHandler(service Service, tenants tenant.Service) *Handler {
	return &Handler{service: service, tenants: tenants}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart/{cartID}", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Post("/items", h.addItem)
		r.Put("/items/{index}", h.updateQuantity)
		r.Delete("/items/{index}", h.removeItem)
		r.Delete("/", h.clearCart)
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCart(r.Context(), h.tenantID(r), chi.URLParam(r, "cartID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.respondCart(w, c)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c, err := h.service.AddItem(r.Context(), h.tenantID(r), chi.URLParam(r, "cartID"), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.respondCart(w, c)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid line item index", http.StatusBadRequest)
		return
	}
	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c, err := h.service.UpdateQuantity(r.Context(), h.tenantID(r), chi.URLParam(r, "cartID"), index, req.Quantity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.respondCart(w, c)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid line item index", http.StatusBadRequest)
		return
	}
	c, err := h.service.RemoveItem(r.Context(), h.tenantID(r), chi.URLParam(r, "cartID"), index)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.respondCart(w, c)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearCart(r.Context(), h.tenantID(r), chi.URLParam(r, "cartID")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) tenantID(r *http.Request) string {
	return h.tenants.Resolve(r.Host).ID
}

func (h *Handler) respondCart(w http.ResponseWriter, c *Cart) {
	respond(w, http.StatusOK, map[string]interface{}{
		"items":   c.Items,
		"totals":  c.Totals,
		"display": c.Totals.Formatted(),
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
