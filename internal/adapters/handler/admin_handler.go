package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/adapters/middleware"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/domain"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/services"
)

// AdminHandler exposes the administrative console over HTTP. Console state
// is in-memory per admin; a process restart resets it the way a page reload
// reset the original.
type AdminHandler struct {
	sessions *services.AdminSessionManager
}

func NewAdminHandler(sessions *services.AdminSessionManager) *AdminHandler {
	return &AdminHandler{sessions: sessions}
}

func (h *AdminHandler) session(r *http.Request) *services.AdminSession {
	userID, _ := r.Context().Value(middleware.UserIDKey).(string)
	return h.sessions.Session(userID)
}

func (h *AdminHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.session(r).Snapshot())
}

type setTabRequest struct {
	Tab services.AdminTab `json:"tab"`
}

func (h *AdminHandler) SetTab(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req setTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	session := h.session(r)
	session.SetTab(req.Tab)
	writeJSON(w, http.StatusOK, session.Snapshot())
}

type searchRequest struct {
	Term string `json:"term"`
}

// Search updates the one input shared by the equipment and complaint tabs;
// the snapshot recomputes both filters from it.
func (h *AdminHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	session := h.session(r)
	session.SetSearch(req.Term)
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// Equipment adds on POST and deletes on DELETE. Deletion has no
// confirmation and no cascade to referencing records.
func (h *AdminHandler) Equipment(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	switch r.Method {
	case http.MethodPost:
		var in services.NewEquipment
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, session.AddEquipment(in))
	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		session.DeleteEquipment(id)
		writeJSON(w, http.StatusOK, session.Snapshot())
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type beginEditRequest struct {
	ID string `json:"id"`
}

func (h *AdminHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req beginEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	session := h.session(r)
	if err := session.BeginEdit(req.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *AdminHandler) EditDraft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var patch services.EquipmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	session := h.session(r)
	if err := session.SetDraft(patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *AdminHandler) CommitEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	session := h.session(r)
	updated, err := session.CommitEdit()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	session := h.session(r)
	session.CancelEdit()
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// Complaints adds on POST and deletes on DELETE.
func (h *AdminHandler) Complaints(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	switch r.Method {
	case http.MethodPost:
		var in services.NewComplaint
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, session.AddComplaint(in))
	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "missing id", http.StatusBadRequest)
			return
		}
		session.DeleteComplaint(id)
		writeJSON(w, http.StatusOK, session.Snapshot())
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type complaintStatusRequest struct {
	ID      string                 `json:"id"`
	Status  domain.ComplaintStatus `json:"status"`
	Comment string                 `json:"comment"`
}

func (h *AdminHandler) UpdateComplaintStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req complaintStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	session := h.session(r)
	updated, err := session.UpdateComplaintStatus(req.ID, req.Status, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
