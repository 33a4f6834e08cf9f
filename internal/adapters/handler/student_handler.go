package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/domain"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/services"
)

// StudentHandler exposes the student dashboard session over HTTP. Every
// endpoint resolves the caller's session from the token claims and answers
// with a fresh state snapshot.
type StudentHandler struct {
	sessions *services.StudentSessionManager
}

func NewStudentHandler(sessions *services.StudentSessionManager) *StudentHandler {
	return &StudentHandler{sessions: sessions}
}

func (h *StudentHandler) session(r *http.Request) *services.StudentSession {
	return h.sessions.Session(userFromContext(r.Context()))
}

// State returns the current snapshot without triggering a load.
func (h *StudentHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.session(r).Snapshot())
}

type activateViewRequest struct {
	View services.View `json:"view"`
}

// ActivateView switches the active view and runs its load; the response
// carries the state after the load settles.
func (h *StudentHandler) ActivateView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req activateViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session := h.session(r)
	if err := session.ActivateView(r.Context(), req.View); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

type equipmentFilterRequest struct {
	Search string `json:"search"`
	Type   string `json:"type"`
}

func (h *StudentHandler) FilterEquipment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req equipmentFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session := h.session(r)
	session.SetEquipmentFilter(req.Search, req.Type)
	writeJSON(w, http.StatusOK, session.Snapshot())
}

type pageRequest struct {
	Direction string `json:"direction"`
}

// Page moves the equipment page forward or back; requests past either bound
// are no-ops.
func (h *StudentHandler) Page(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req pageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session := h.session(r)
	switch req.Direction {
	case "next":
		session.NextPage()
	case "prev":
		session.PrevPage()
	default:
		http.Error(w, "direction must be next or prev", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

type bookingFilterRequest struct {
	Status string `json:"status"`
}

func (h *StudentHandler) FilterBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req bookingFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session := h.session(r)
	session.SetBookingFilter(req.Status)
	writeJSON(w, http.StatusOK, session.Snapshot())
}

type createBookingRequest struct {
	EquipmentID string `json:"equipmentId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func (h *StudentHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session := h.session(r)
	booking, err := session.SubmitBooking(r.Context(), req.EquipmentID, domain.DateRange{
		Start: req.StartDate,
		End:   req.EndDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

type cancelBookingRequest struct {
	ID string `json:"id"`
	// Confirm is the explicit yes/no gate; false aborts with no side effect.
	Confirm bool `json:"confirm"`
}

func (h *StudentHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req cancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session := h.session(r)
	if err := session.CancelBooking(r.Context(), req.ID, req.Confirm); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *StudentHandler) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var draft domain.ComplaintDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session := h.session(r)
	complaint, err := session.SubmitComplaint(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, complaint)
}

type markReadRequest struct {
	ID string `json:"id"`
}

func (h *StudentHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req markReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session := h.session(r)
	session.MarkNotificationRead(r.Context(), req.ID)
	writeJSON(w, http.StatusOK, session.Snapshot())
}
