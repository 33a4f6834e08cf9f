package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/adapters/middleware"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/domain"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/services"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/test/mocks"
)

// studentRequest builds a request carrying the context claims the auth
// middleware would have stashed.
func studentRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, "2")
	ctx = context.WithValue(ctx, middleware.UserNameKey, "Student User")
	ctx = context.WithValue(ctx, middleware.UserEmailKey, "student@university.edu")
	ctx = context.WithValue(ctx, middleware.RoleKey, "student")
	return req.WithContext(ctx)
}

func newStudentHandler() *StudentHandler {
	catalog := []domain.Equipment{
		{ID: "1", Name: "Dell Precision Workstation", Type: domain.TypeComputer, Status: domain.EquipmentAvailable},
	}
	backend := services.NewSimulatedBackend(mocks.NewMockListStore(), nil, services.Delays{}, catalog, nil)
	return NewStudentHandler(services.NewStudentSessionManager(backend))
}

func TestStudentState(t *testing.T) {
	h := newStudentHandler()

	rec := httptest.NewRecorder()
	h.State(rec, studentRequest("GET", "/student/state", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var snap services.StudentSnapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snap.ActiveView != services.ViewDashboard {
		t.Errorf("expected dashboard as initial view, got %q", snap.ActiveView)
	}
	if snap.CurrentPage != 1 {
		t.Errorf("expected page 1, got %d", snap.CurrentPage)
	}
}

func TestStudentActivateView(t *testing.T) {
	h := newStudentHandler()

	rec := httptest.NewRecorder()
	h.ActivateView(rec, studentRequest("POST", "/student/view", `{"view":"equipment"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var snap services.StudentSnapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snap.ActiveView != services.ViewEquipment {
		t.Errorf("expected equipment view, got %q", snap.ActiveView)
	}
	if len(snap.Equipment) != 1 {
		t.Errorf("expected loaded catalog, got %d items", len(snap.Equipment))
	}
}

func TestStudentCreateBooking(t *testing.T) {
	h := newStudentHandler()

	body := `{"equipmentId":"1","startDate":"2025-03-20","endDate":"2025-03-25"}`
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, studentRequest("POST", "/student/bookings", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var booking domain.Booking
	if err := json.NewDecoder(rec.Body).Decode(&booking); err != nil {
		t.Fatalf("failed to decode booking: %v", err)
	}
	if booking.EquipmentName != "Dell Precision Workstation" {
		t.Errorf("unexpected booking: %+v", booking)
	}
	if booking.StudentName != "Student User" {
		t.Errorf("expected student name from claims, got %q", booking.StudentName)
	}
}

func TestStudentCreateBooking_Validation(t *testing.T) {
	h := newStudentHandler()

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, studentRequest("POST", "/student/bookings", `{"equipmentId":""}`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestStudentCreateBooking_UnknownEquipment(t *testing.T) {
	h := newStudentHandler()

	body := `{"equipmentId":"999","startDate":"2025-03-20","endDate":"2025-03-25"}`
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, studentRequest("POST", "/student/bookings", body))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestStudentCancelBooking_DeclinedConfirm(t *testing.T) {
	h := newStudentHandler()

	// File a booking first.
	body := `{"equipmentId":"1","startDate":"2025-03-20","endDate":"2025-03-25"}`
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, studentRequest("POST", "/student/bookings", body))
	var booking domain.Booking
	if err := json.NewDecoder(rec.Body).Decode(&booking); err != nil {
		t.Fatalf("failed to decode booking: %v", err)
	}

	rec = httptest.NewRecorder()
	h.CancelBooking(rec, studentRequest("POST", "/student/bookings/cancel", `{"id":"`+booking.ID+`","confirm":false}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var snap services.StudentSnapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if len(snap.Bookings) != 1 {
		t.Errorf("declined confirm must keep the booking, got %d", len(snap.Bookings))
	}

	rec = httptest.NewRecorder()
	h.CancelBooking(rec, studentRequest("POST", "/student/bookings/cancel", `{"id":"`+booking.ID+`","confirm":true}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	snap = services.StudentSnapshot{}
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if len(snap.Bookings) != 0 {
		t.Errorf("expected booking removed, got %d", len(snap.Bookings))
	}
}

func TestStudentPage_BadDirection(t *testing.T) {
	h := newStudentHandler()

	rec := httptest.NewRecorder()
	h.Page(rec, studentRequest("POST", "/student/equipment/page", `{"direction":"sideways"}`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestStudentSubmitComplaint(t *testing.T) {
	h := newStudentHandler()

	body := `{"lab":"301","type":"hardware","description":"Monitor flickers"}`
	rec := httptest.NewRecorder()
	h.SubmitComplaint(rec, studentRequest("POST", "/student/complaints", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var complaint domain.StudentComplaint
	if err := json.NewDecoder(rec.Body).Decode(&complaint); err != nil {
		t.Fatalf("failed to decode complaint: %v", err)
	}
	if complaint.Status != domain.StudentComplaintPending {
		t.Errorf("expected pending complaint, got %q", complaint.Status)
	}
}

func TestStudentSubmitComplaint_Validation(t *testing.T) {
	h := newStudentHandler()

	rec := httptest.NewRecorder()
	h.SubmitComplaint(rec, studentRequest("POST", "/student/complaints", `{"lab":"301"}`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestStudentState_MethodNotAllowed(t *testing.T) {
	h := newStudentHandler()

	rec := httptest.NewRecorder()
	h.State(rec, studentRequest("POST", "/student/state", ""))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
