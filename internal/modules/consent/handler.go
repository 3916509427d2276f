package consent

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the cookie-consent endpoints.
type Handler struct{ store Store }

func NewHandler(store Store) *Handler { return &Handler{store: store} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/consent", func(r chi.Router) {
		r.Get("/", h.getConsent)
		r.Post("/", h.saveConsent)
		r.Get("/param", h.consentParam)
	})
}

type saveRequest struct {
	VisitorID string `json:"visitor_id"`
	Analytics bool   `json:"analytics"`
	Marketing bool   `json:"marketing"`
}

func (h *Handler) getConsent(w http.ResponseWriter, r *http.Request) {
	visitorID := r.URL.Query().Get("visitor")
	if visitorID == "" {
		http.Error(w, "visitor is required", http.StatusBadRequest)
		return
	}

	// A consent token handed over from another storefront domain takes
	// precedence over anything stored locally.
	if param := r.URL.Query().Get("param"); param != "" {
		if p, err := DecodeParam(param); err == nil {
			respond(w, http.StatusOK, map[string]interface{}{"preferences": p, "recorded": true})
			return
		}
	}

	p, ok, err := h.store.Get(r.Context(), visitorID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"preferences": p, "recorded": ok})
}

func (h *Handler) saveConsent(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.VisitorID == "" {
		http.Error(w, "visitor_id is required", http.StatusBadRequest)
		return
	}

	p := Preferences{
		Necessary: true,
		Analytics: req.Analytics,
		Marketing: req.Marketing,
		Timestamp: time.Now().UTC(),
	}
	if err := h.store.Save(r.Context(), req.VisitorID, p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"preferences": p})
}

func (h *Handler) consentParam(w http.ResponseWriter, r *http.Request) {
	visitorID := r.URL.Query().Get("visitor")
	if visitorID == "" {
		http.Error(w, "visitor is required", http.StatusBadRequest)
		return
	}

	p, ok, err := h.store.Get(r.Context(), visitorID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no consent recorded for visitor", http.StatusNotFound)
		return
	}

	param, err := EncodeParam(p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, map[string]string{"param": param})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
