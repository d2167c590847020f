// Package groups exposes the admin group-management endpoints.
package groups

import (
	"encoding/json"
	"fmt"
	"net/http"

	"grouphome_coaching/pkg/core/coaching"
)

// Handler wraps the group store for the admin panel.
type Handler struct {
	Store *coaching.GroupStore
}

func NewHandler(store *coaching.GroupStore) *Handler {
	return &Handler{Store: store}
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

// CreateGroupRequest is the POST /api/groups body.
type CreateGroupRequest struct {
	Name    string           `json:"name"`
	Program coaching.Program `json:"program"`
	CoachID string           `json:"coach_id"`
}

// HandleGroups creates (POST) and lists (GET) coaching groups.
func (h *Handler) HandleGroups(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "GET, POST") {
		return
	}

	switch r.Method {
	case "POST":
		var req CreateGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if req.Program != coaching.ProgramGroupHome && req.Program != coaching.ProgramMIO {
			http.Error(w, fmt.Sprintf("unknown program: %s", req.Program), http.StatusBadRequest)
			return
		}

		group, err := h.Store.CreateGroup(r.Context(), req.Name, req.Program, req.CoachID)
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to create group: %v", err), http.StatusInternalServerError)
			return
		}
		fmt.Printf("[GROUPS] created group %s (%s)\n", group.Name, group.Program)
		writeJSON(w, group)
	case "GET":
		groups, err := h.Store.ListGroups(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to list groups: %v", err), http.StatusInternalServerError)
			return
		}
		if groups == nil {
			groups = []*coaching.Group{}
		}
		writeJSON(w, groups)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// MemberRequest is the POST/DELETE /api/groups/members body.
type MemberRequest struct {
	GroupID string        `json:"group_id"`
	UserID  string        `json:"user_id"`
	Role    coaching.Role `json:"role,omitempty"`
}

// HandleMembers adds (POST), removes (DELETE) and lists (GET) group members.
// Listing takes ?group_id=.
func (h *Handler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "GET, POST, DELETE") {
		return
	}

	switch r.Method {
	case "GET":
		groupID := r.URL.Query().Get("group_id")
		if groupID == "" {
			http.Error(w, "group_id is required", http.StatusBadRequest)
			return
		}
		members, err := h.Store.ListMembers(r.Context(), groupID)
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to list members: %v", err), http.StatusInternalServerError)
			return
		}
		if members == nil {
			members = []*coaching.Membership{}
		}
		writeJSON(w, members)
	case "POST":
		var req MemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
			return
		}
		if req.GroupID == "" || req.UserID == "" {
			http.Error(w, "group_id and user_id are required", http.StatusBadRequest)
			return
		}
		role := req.Role
		if role == "" {
			role = coaching.RoleMember
		}
		member, err := h.Store.AddMember(r.Context(), req.GroupID, req.UserID, role)
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to add member: %v", err), http.StatusInternalServerError)
			return
		}
		writeJSON(w, member)
	case "DELETE":
		var req MemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
			return
		}
		if err := h.Store.RemoveMember(r.Context(), req.GroupID, req.UserID); err != nil {
			http.Error(w, fmt.Sprintf("failed to remove member: %v", err), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]string{"status": "removed"})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleCheckIns records (POST) an MIO weekly check-in and fetches (GET) the
// latest one for ?user_id=.
func (h *Handler) HandleCheckIns(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "GET, POST") {
		return
	}

	switch r.Method {
	case "POST":
		var checkIn coaching.CheckIn
		if err := json.NewDecoder(r.Body).Decode(&checkIn); err != nil {
			http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
			return
		}
		if checkIn.UserID == "" {
			http.Error(w, "user_id is required", http.StatusBadRequest)
			return
		}
		if err := h.Store.RecordCheckIn(r.Context(), &checkIn); err != nil {
			http.Error(w, fmt.Sprintf("failed to record check-in: %v", err), http.StatusInternalServerError)
			return
		}
		writeJSON(w, checkIn)
	case "GET":
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			http.Error(w, "user_id is required", http.StatusBadRequest)
			return
		}
		checkIn, err := h.Store.LatestCheckIn(r.Context(), userID)
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to load check-in: %v", err), http.StatusInternalServerError)
			return
		}
		if checkIn == nil {
			http.Error(w, "no check-ins recorded", http.StatusNotFound)
			return
		}
		writeJSON(w, checkIn)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
