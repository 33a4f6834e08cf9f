package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/domain"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/test/mocks"
)

func testStudent() domain.User {
	return domain.User{
		ID:    "2",
		Name:  "Student User",
		Email: "student@university.edu",
		Role:  domain.RoleStudent,
	}
}

// newTestSession builds a session over a zero-latency backend with a frozen
// clock and a short notice delay.
func newTestSession(t *testing.T, catalog []domain.Equipment, notifications []domain.Notification) (*StudentSession, *mocks.MockListStore) {
	t.Helper()
	store := mocks.NewMockListStore()
	backend := NewSimulatedBackend(store, nil, Delays{}, catalog, notifications)
	backend.now = func() time.Time {
		return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	session := NewStudentSession(backend, testStudent())
	session.now = backend.now
	session.noticeDelay = 10 * time.Millisecond
	return session, store
}

func seedBookings(t *testing.T, store *mocks.MockListStore, bookings []domain.Booking) {
	t.Helper()
	data, err := json.Marshal(bookings)
	if err != nil {
		t.Fatalf("failed to marshal bookings: %v", err)
	}
	store.Seed(BookingsKey, data)
}

func seedComplaints(t *testing.T, store *mocks.MockListStore, complaints []domain.StudentComplaint) {
	t.Helper()
	data, err := json.Marshal(complaints)
	if err != nil {
		t.Fatalf("failed to marshal complaints: %v", err)
	}
	store.Seed(ComplaintsKey, data)
}

func TestLoadDashboard_ComputesStats(t *testing.T) {
	catalog := []domain.Equipment{
		{ID: "1", Name: "A", Status: domain.EquipmentAvailable},
		{ID: "2", Name: "B", Status: domain.EquipmentAvailable},
		{ID: "3", Name: "C", Status: domain.EquipmentMaintenance},
		{ID: "4", Name: "D", Status: domain.EquipmentAvailable},
	}
	session, store := newTestSession(t, catalog, nil)
	seedBookings(t, store, []domain.Booking{
		{ID: "booking-1", Status: domain.BookingApproved, EndDate: "2025-04-01"},
		{ID: "booking-2", Status: domain.BookingApproved, EndDate: "2025-01-01"},
		{ID: "booking-3", Status: domain.BookingPending, EndDate: "2025-04-01"},
	})
	seedComplaints(t, store, []domain.StudentComplaint{
		{ID: "complaint-1", Status: domain.StudentComplaintPending},
		{ID: "complaint-2", Status: domain.StudentComplaintResolved},
	})

	if err := session.ActivateView(context.Background(), ViewDashboard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := session.Snapshot()
	want := DashboardStats{
		ActiveBookings:     2,
		AvailableEquipment: 3,
		UpcomingReturns:    1,
		PendingComplaints:  1,
	}
	if snap.Stats != want {
		t.Errorf("expected stats %+v, got %+v", want, snap.Stats)
	}
	// The dashboard previews at most three catalog entries.
	if len(snap.Equipment) != 3 {
		t.Errorf("expected 3 preview items, got %d", len(snap.Equipment))
	}
	if snap.ActiveView != ViewDashboard {
		t.Errorf("expected dashboard view, got %q", snap.ActiveView)
	}
}

func TestSubmitBooking_OptimisticMerge(t *testing.T) {
	catalog := []domain.Equipment{
		{ID: "1", Name: "Dell Precision Workstation", Status: domain.EquipmentAvailable},
	}
	session, _ := newTestSession(t, catalog, nil)

	booking, err := session.SubmitBooking(context.Background(), "1", domain.DateRange{
		Start: "2025-03-20",
		End:   "2025-03-25",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != domain.BookingPending {
		t.Errorf("expected pending booking, got %q", booking.Status)
	}

	snap := session.Snapshot()
	if len(snap.Bookings) != 1 || snap.Bookings[0].ID != booking.ID {
		t.Errorf("expected new booking first in list, got %+v", snap.Bookings)
	}
	// The stat counts the pending booking immediately.
	if snap.Stats.ActiveBookings != 1 {
		t.Errorf("expected active bookings 1, got %d", snap.Stats.ActiveBookings)
	}
}

func TestSubmitBooking_Validation(t *testing.T) {
	session, _ := newTestSession(t, nil, nil)

	cases := []struct {
		name        string
		equipmentID string
		dates       domain.DateRange
	}{
		{"missing equipment", "", domain.DateRange{Start: "2025-03-20", End: "2025-03-25"}},
		{"missing start", "1", domain.DateRange{End: "2025-03-25"}},
		{"missing end", "1", domain.DateRange{Start: "2025-03-20"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := session.SubmitBooking(context.Background(), tc.equipmentID, tc.dates)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCancelBooking_ConfirmationGate(t *testing.T) {
	catalog := []domain.Equipment{
		{ID: "1", Name: "Dell Precision Workstation", Status: domain.EquipmentAvailable},
	}
	session, store := newTestSession(t, catalog, nil)

	booking, err := session.SubmitBooking(context.Background(), "1", domain.DateRange{
		Start: "2025-03-20",
		End:   "2025-03-25",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Declining the confirmation changes nothing.
	if err := session.CancelBooking(context.Background(), booking.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap := session.Snapshot(); len(snap.Bookings) != 1 {
		t.Fatalf("expected booking untouched after declined confirm, got %d", len(snap.Bookings))
	}
	if len(store.PutCalls) != 1 {
		t.Fatalf("expected no extra writes after declined confirm, got %d", len(store.PutCalls))
	}

	if err := session.CancelBooking(context.Background(), booking.ID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := session.Snapshot()
	if len(snap.Bookings) != 0 {
		t.Errorf("expected booking removed, got %d", len(snap.Bookings))
	}
	if snap.Stats.ActiveBookings != 0 {
		t.Errorf("expected stat back to 0, got %d", snap.Stats.ActiveBookings)
	}

	// The counter floors at zero.
	if err := session.CancelBooking(context.Background(), "booking-unknown", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap := session.Snapshot(); snap.Stats.ActiveBookings != 0 {
		t.Errorf("expected stat floored at 0, got %d", snap.Stats.ActiveBookings)
	}
}

func TestEquipmentFilter_SearchAndType(t *testing.T) {
	catalog := []domain.Equipment{
		{ID: "1", Name: "Dell Precision Workstation", Type: domain.TypeComputer, Description: "High-performance workstation"},
		{ID: "2", Name: "MacBook Pro", Type: domain.TypeComputer, Description: "Dell-compatible dock included"},
		{ID: "3", Name: "Dell PowerEdge", Type: domain.TypeServer, Description: "Rack server"},
		{ID: "4", Name: "Cisco Switch", Type: domain.TypeNetworkDevice, Description: "24-port"},
	}
	session, _ := newTestSession(t, catalog, nil)
	if err := session.ActivateView(context.Background(), ViewEquipment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both filters compose; the description matches too.
	session.SetEquipmentFilter("dell", "computer")
	snap := session.Snapshot()
	if len(snap.Equipment) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(snap.Equipment))
	}
	for _, e := range snap.Equipment {
		if e.Type != domain.TypeComputer {
			t.Errorf("type filter leaked %q", e.Type)
		}
	}

	// Empty type resets to all.
	session.SetEquipmentFilter("dell", "")
	if snap := session.Snapshot(); len(snap.Equipment) != 3 {
		t.Errorf("expected 3 matches with type all, got %d", len(snap.Equipment))
	}
}

func TestEquipmentPagination(t *testing.T) {
	var catalog []domain.Equipment
	for i := 1; i <= 13; i++ {
		catalog = append(catalog, domain.Equipment{
			ID:   fmt.Sprintf("%d", i),
			Name: fmt.Sprintf("Item %d", i),
			Type: domain.TypeComputer,
		})
	}
	session, _ := newTestSession(t, catalog, nil)
	if err := session.ActivateView(context.Background(), ViewEquipment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := session.Snapshot()
	if snap.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 13 items, got %d", snap.TotalPages)
	}
	if len(snap.Equipment) != EquipmentPageSize {
		t.Errorf("expected full first page, got %d", len(snap.Equipment))
	}

	session.NextPage()
	session.NextPage()
	snap = session.Snapshot()
	if snap.CurrentPage != 3 {
		t.Fatalf("expected page 3, got %d", snap.CurrentPage)
	}
	if len(snap.Equipment) != 1 {
		t.Errorf("expected 1 item on last page, got %d", len(snap.Equipment))
	}

	// Past the last page is a no-op.
	session.NextPage()
	if snap := session.Snapshot(); snap.CurrentPage != 3 {
		t.Errorf("expected page unchanged at 3, got %d", snap.CurrentPage)
	}

	session.PrevPage()
	session.PrevPage()
	session.PrevPage()
	if snap := session.Snapshot(); snap.CurrentPage != 1 {
		t.Errorf("expected page floored at 1, got %d", snap.CurrentPage)
	}
}

func TestBookingFilter(t *testing.T) {
	session, store := newTestSession(t, nil, nil)
	seedBookings(t, store, []domain.Booking{
		{ID: "booking-1", Status: domain.BookingApproved},
		{ID: "booking-2", Status: domain.BookingPending},
		{ID: "booking-3", Status: domain.BookingApproved},
	})
	if err := session.ActivateView(context.Background(), ViewBookings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session.SetBookingFilter("approved")
	if snap := session.Snapshot(); len(snap.Bookings) != 2 {
		t.Errorf("expected 2 approved bookings, got %d", len(snap.Bookings))
	}

	session.SetBookingFilter("all")
	if snap := session.Snapshot(); len(snap.Bookings) != 3 {
		t.Errorf("expected all 3 bookings, got %d", len(snap.Bookings))
	}
}

func TestSubmitComplaint_Validation(t *testing.T) {
	session, store := newTestSession(t, nil, nil)

	_, err := session.SubmitComplaint(context.Background(), domain.ComplaintDraft{
		Lab: "301",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(store.PutCalls) != 0 {
		t.Error("validation failure must not reach the backend")
	}
}

func TestSubmitComplaint_SuccessNoticeClears(t *testing.T) {
	session, _ := newTestSession(t, nil, nil)

	complaint, err := session.SubmitComplaint(context.Background(), domain.ComplaintDraft{
		Lab:         "301",
		Type:        "hardware",
		Description: "Monitor flickers",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if complaint.Status != domain.StudentComplaintPending {
		t.Errorf("expected pending complaint, got %q", complaint.Status)
	}

	snap := session.Snapshot()
	if snap.Notice == nil || !snap.Notice.Success {
		t.Fatalf("expected success notice, got %+v", snap.Notice)
	}
	if len(snap.Complaints) != 1 {
		t.Errorf("expected complaint prepended, got %d", len(snap.Complaints))
	}
	if snap.Stats.PendingComplaints != 1 {
		t.Errorf("expected pending complaints stat 1, got %d", snap.Stats.PendingComplaints)
	}

	// The success banner clears itself.
	time.Sleep(50 * time.Millisecond)
	if snap := session.Snapshot(); snap.Notice != nil {
		t.Errorf("expected notice cleared, got %+v", snap.Notice)
	}
}

func TestSubmitComplaint_FailureNoticeSticks(t *testing.T) {
	session, store := newTestSession(t, nil, nil)
	store.PutError = errors.New("connection refused")

	_, err := session.SubmitComplaint(context.Background(), domain.ComplaintDraft{
		Lab:         "301",
		Type:        "hardware",
		Description: "Monitor flickers",
	})
	if err == nil {
		t.Fatal("expected error when store is down")
	}

	time.Sleep(50 * time.Millisecond)
	snap := session.Snapshot()
	if snap.Notice == nil || snap.Notice.Success {
		t.Fatalf("expected sticky failure notice, got %+v", snap.Notice)
	}
	if snap.Submitting {
		t.Error("submitting flag must clear after failure")
	}
}

func TestMarkNotificationRead(t *testing.T) {
	notifications := []domain.Notification{
		{ID: "1", Title: "Booking Approved", Read: false},
		{ID: "2", Title: "Return Reminder", Read: false},
	}
	session, _ := newTestSession(t, nil, notifications)
	if err := session.ActivateView(context.Background(), ViewNotifications); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap := session.Snapshot(); snap.UnreadCount != 2 {
		t.Fatalf("expected 2 unread, got %d", snap.UnreadCount)
	}

	session.MarkNotificationRead(context.Background(), "1")
	snap := session.Snapshot()
	if snap.UnreadCount != 1 {
		t.Errorf("expected 1 unread, got %d", snap.UnreadCount)
	}
	for _, n := range snap.Notifications {
		if n.ID == "1" && !n.Read {
			t.Error("expected notification 1 marked read")
		}
	}

	// Marking the same notification again is a no-op.
	session.MarkNotificationRead(context.Background(), "1")
	if snap := session.Snapshot(); snap.UnreadCount != 1 {
		t.Errorf("expected unread unchanged, got %d", snap.UnreadCount)
	}
}

func TestStudentSessionManager_ReusesSession(t *testing.T) {
	store := mocks.NewMockListStore()
	backend := NewSimulatedBackend(store, nil, Delays{}, nil, nil)
	manager := NewStudentSessionManager(backend)

	first := manager.Session(testStudent())
	second := manager.Session(testStudent())
	if first != second {
		t.Error("expected the same session per user id")
	}

	other := manager.Session(domain.User{ID: "3", Name: "Other Student"})
	if other == first {
		t.Error("expected distinct sessions per user")
	}
}
