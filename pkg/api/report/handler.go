// Package report exposes AI report generation over HTTP.
package report

import (
	"encoding/json"
	"fmt"
	"net/http"

	"grouphome_coaching/pkg/core/report"
	"grouphome_coaching/pkg/core/store"
	"grouphome_coaching/pkg/core/underwriting"
)

// Handler wires the generator to persistence. Reports is optional; when the
// database is down, generation still succeeds and persistence is skipped.
type Handler struct {
	Generator *report.Generator
	Reports   *store.ReportStore
}

func NewHandler(generator *report.Generator, reports *store.ReportStore) *Handler {
	return &Handler{Generator: generator, Reports: reports}
}

func allowCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// UnderwritingRequest is the POST /api/report/underwriting body.
type UnderwritingRequest struct {
	UserID string                        `json:"user_id"`
	DealID string                        `json:"deal_id,omitempty"`
	Inputs underwriting.CalculatorInputs `json:"inputs"`
}

// HandleUnderwriting generates and persists an AI underwriting report.
func (h *Handler) HandleUnderwriting(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}

	var req UnderwritingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	rep, err := h.Generator.GenerateUnderwritingReport(r.Context(), req.UserID, req.Inputs)
	if err != nil {
		http.Error(w, fmt.Sprintf("report generation failed: %v", err), http.StatusInternalServerError)
		return
	}
	rep.DealID = req.DealID

	if h.Reports != nil {
		if err := h.Reports.SaveUnderwriting(r.Context(), rep); err != nil {
			fmt.Printf("[REPORT] persistence skipped: %v\n", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// HandleMIO generates the weekly Mind Insurance feedback note for a check-in.
func (h *Handler) HandleMIO(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r) {
		return
	}

	var checkIn report.CheckInSummary
	if err := json.NewDecoder(r.Body).Decode(&checkIn); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}
	if checkIn.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	feedback, err := h.Generator.GenerateMIOFeedback(r.Context(), checkIn)
	if err != nil {
		http.Error(w, fmt.Sprintf("feedback generation failed: %v", err), http.StatusInternalServerError)
		return
	}

	if h.Reports != nil {
		if err := h.Reports.SaveMIOFeedback(r.Context(), feedback); err != nil {
			fmt.Printf("[REPORT] persistence skipped: %v\n", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feedback)
}
