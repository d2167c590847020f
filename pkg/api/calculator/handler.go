// Package calculator exposes the underwriting engine over HTTP. Every
// endpoint is a thin decode/compute/encode wrapper; the engine stays pure.
package calculator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"grouphome_coaching/pkg/core/store"
	"grouphome_coaching/pkg/core/underwriting"
)

// Handler holds the persistence dependencies for defaults and saved deals.
type Handler struct {
	Defaults *store.DefaultsStore
	Deals    *store.DealStore
}

func NewHandler(defaults *store.DefaultsStore, deals *store.DealStore) *Handler {
	return &Handler{Defaults: defaults, Deals: deals}
}

func allowCORS(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func decodeInputs(w http.ResponseWriter, r *http.Request) (underwriting.CalculatorInputs, bool) {
	var inputs underwriting.CalculatorInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		http.Error(w, fmt.Sprintf("invalid inputs: %v", err), http.StatusBadRequest)
		return inputs, false
	}
	return inputs, true
}

// HandleSimple computes the simple tier.
func (h *Handler) HandleSimple(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "POST") {
		return
	}
	inputs, ok := decodeInputs(w, r)
	if !ok {
		return
	}
	writeJSON(w, underwriting.CalculateSimpleOutput(inputs))
}

// HandleModerate computes the moderate tier.
func (h *Handler) HandleModerate(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "POST") {
		return
	}
	inputs, ok := decodeInputs(w, r)
	if !ok {
		return
	}
	writeJSON(w, underwriting.CalculateModerateOutput(inputs))
}

// HandleAdvanced computes the advanced tier.
func (h *Handler) HandleAdvanced(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "POST") {
		return
	}
	inputs, ok := decodeInputs(w, r)
	if !ok {
		return
	}
	writeJSON(w, underwriting.CalculateAdvancedOutput(inputs))
}

// HandleRisk computes the risk assessment for the posted inputs.
func (h *Handler) HandleRisk(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "POST") {
		return
	}
	inputs, ok := decodeInputs(w, r)
	if !ok {
		return
	}
	simple := underwriting.CalculateSimpleOutput(inputs)
	writeJSON(w, underwriting.CalculateRiskAssessment(inputs, simple))
}

// HandleDefaults serves (GET) and saves (POST) a user's calculator defaults.
func (h *Handler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "GET, POST") {
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case "GET":
		inputs, err := h.Defaults.Get(r.Context(), userID)
		if err != nil {
			fmt.Printf("[CALCULATOR] defaults lookup failed for %s: %v\n", userID, err)
		}
		writeJSON(w, inputs)
	case "POST":
		inputs, ok := decodeInputs(w, r)
		if !ok {
			return
		}
		if err := h.Defaults.Save(r.Context(), userID, inputs); err != nil {
			http.Error(w, fmt.Sprintf("failed to save defaults: %v", err), http.StatusInternalServerError)
			return
		}
		writeJSON(w, inputs)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// SaveDealRequest is the POST /api/deals body.
type SaveDealRequest struct {
	UserID string                        `json:"user_id"`
	Name   string                        `json:"name"`
	Inputs underwriting.CalculatorInputs `json:"inputs"`
}

// HandleDeals saves (POST) and lists (GET) underwriting deals. Saving runs
// the full advanced analysis so the stored deal always carries a result
// consistent with its inputs.
func (h *Handler) HandleDeals(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "GET, POST") {
		return
	}

	switch r.Method {
	case "POST":
		var req SaveDealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
			return
		}
		if req.UserID == "" {
			http.Error(w, "user_id is required", http.StatusBadRequest)
			return
		}

		output := underwriting.CalculateAdvancedOutput(req.Inputs)
		deal := &store.Deal{
			ID:        uuid.NewString(),
			UserID:    req.UserID,
			Name:      req.Name,
			Inputs:    req.Inputs,
			Output:    output,
			Risk:      underwriting.CalculateRiskAssessment(req.Inputs, output.SimpleOutput),
			CreatedAt: time.Now().UTC(),
		}
		if err := h.Deals.Save(r.Context(), deal); err != nil {
			http.Error(w, fmt.Sprintf("failed to save deal: %v", err), http.StatusInternalServerError)
			return
		}
		writeJSON(w, deal)
	case "GET":
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			http.Error(w, "user_id is required", http.StatusBadRequest)
			return
		}
		deals, err := h.Deals.ListByUser(r.Context(), userID)
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to list deals: %v", err), http.StatusInternalServerError)
			return
		}
		if deals == nil {
			deals = []*store.Deal{}
		}
		writeJSON(w, deals)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
