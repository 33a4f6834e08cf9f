package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/domain"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/ports"
)

// Durable collection keys in the list store. The payload under each key is a
// JSON-encoded ordered sequence of the corresponding entity. There is no
// schema version field; any shape change is a breaking, unmigrated change.
const (
	BookingsKey   = "bookings"
	ComplaintsKey = "complaints"
)

// Delays fixes the artificial latency per backend operation. There is no
// jitter, timeout or failure injection: every call eventually resolves, and
// only domain-level errors ever come back.
type Delays struct {
	FetchEquipment       time.Duration
	FetchBookings        time.Duration
	CreateBooking        time.Duration
	CancelBooking        time.Duration
	FetchComplaints      time.Duration
	SubmitComplaint      time.Duration
	FetchNotifications   time.Duration
	MarkNotificationRead time.Duration
}

// DefaultDelays returns the latency profile of the original mock API.
func DefaultDelays() Delays {
	return Delays{
		FetchEquipment:       500 * time.Millisecond,
		FetchBookings:        600 * time.Millisecond,
		CreateBooking:        800 * time.Millisecond,
		CancelBooking:        500 * time.Millisecond,
		FetchComplaints:      500 * time.Millisecond,
		SubmitComplaint:      800 * time.Millisecond,
		FetchNotifications:   400 * time.Millisecond,
		MarkNotificationRead: 300 * time.Millisecond,
	}
}

// SimulatedBackend stands in for a real lab service. The equipment catalog
// and notifications are process-local sample data; bookings and complaints
// get a durable copy behind the list store.
type SimulatedBackend struct {
	store         ports.ListStore
	events        ports.PortalEventPublisher
	delays        Delays
	catalog       []domain.Equipment
	notifications []domain.Notification

	// now is swappable for deterministic ids and dates in tests.
	now func() time.Time
}

var _ ports.LabBackend = (*SimulatedBackend)(nil)

// NewSimulatedBackend wires the backend over a list store. The publisher may
// be nil; events are then dropped.
func NewSimulatedBackend(
	store ports.ListStore,
	events ports.PortalEventPublisher,
	delays Delays,
	catalog []domain.Equipment,
	notifications []domain.Notification,
) *SimulatedBackend {
	return &SimulatedBackend{
		store:         store,
		events:        events,
		delays:        delays,
		catalog:       catalog,
		notifications: notifications,
		now:           time.Now,
	}
}

// delay blocks for d or until the context is cancelled.
func (b *SimulatedBackend) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *SimulatedBackend) FetchEquipment(ctx context.Context) ([]domain.Equipment, error) {
	if err := b.delay(ctx, b.delays.FetchEquipment); err != nil {
		return nil, err
	}
	out := make([]domain.Equipment, len(b.catalog))
	copy(out, b.catalog)
	return out, nil
}

func (b *SimulatedBackend) FetchBookings(ctx context.Context) ([]domain.Booking, error) {
	if err := b.delay(ctx, b.delays.FetchBookings); err != nil {
		return nil, err
	}
	return b.loadBookings(ctx)
}

func (b *SimulatedBackend) CreateBooking(ctx context.Context, equipmentID string, dates domain.DateRange, studentName string) (*domain.Booking, error) {
	if err := b.delay(ctx, b.delays.CreateBooking); err != nil {
		return nil, err
	}

	equipment := b.findEquipment(equipmentID)
	if equipment == nil {
		return nil, ErrEquipmentNotFound
	}

	booking := domain.Booking{
		ID:            fmt.Sprintf("booking-%d", b.now().UnixMilli()),
		EquipmentID:   equipmentID,
		EquipmentName: equipment.Name,
		StudentName:   studentName,
		StartDate:     dates.Start,
		EndDate:       dates.End,
		Status:        domain.BookingPending,
	}
	if equipment.ImageURL != "" {
		url := equipment.ImageURL
		booking.ImageURL = &url
	}

	// Read-modify-write of the whole list; not an atomic append.
	bookings, err := b.loadBookings(ctx)
	if err != nil {
		return nil, err
	}
	bookings = append(bookings, booking)
	if err := b.saveList(ctx, BookingsKey, bookings); err != nil {
		return nil, err
	}

	b.publishBookingCreated(ctx, booking)
	return &booking, nil
}

func (b *SimulatedBackend) CancelBooking(ctx context.Context, id string) error {
	if err := b.delay(ctx, b.delays.CancelBooking); err != nil {
		return err
	}

	bookings, err := b.loadBookings(ctx)
	if err != nil {
		return err
	}
	kept := bookings[:0]
	for _, bk := range bookings {
		if bk.ID != id {
			kept = append(kept, bk)
		}
	}
	return b.saveList(ctx, BookingsKey, kept)
}

func (b *SimulatedBackend) FetchComplaints(ctx context.Context) ([]domain.StudentComplaint, error) {
	if err := b.delay(ctx, b.delays.FetchComplaints); err != nil {
		return nil, err
	}
	return b.loadComplaints(ctx)
}

func (b *SimulatedBackend) SubmitComplaint(ctx context.Context, draft domain.ComplaintDraft) (*domain.StudentComplaint, error) {
	if err := b.delay(ctx, b.delays.SubmitComplaint); err != nil {
		return nil, err
	}

	complaint := domain.StudentComplaint{
		ID:          fmt.Sprintf("complaint-%d", b.now().UnixMilli()),
		EquipmentID: draft.EquipmentID,
		Lab:         draft.Lab,
		Type:        draft.Type,
		Description: draft.Description,
		Status:      domain.StudentComplaintPending,
		Date:        b.now().Format(domain.DateOnly),
		ImageURL:    draft.ImageURL,
	}
	if draft.EquipmentID != nil {
		if equipment := b.findEquipment(*draft.EquipmentID); equipment != nil {
			name := equipment.Name
			complaint.EquipmentName = &name
		}
	}

	complaints, err := b.loadComplaints(ctx)
	if err != nil {
		return nil, err
	}
	complaints = append(complaints, complaint)
	if err := b.saveList(ctx, ComplaintsKey, complaints); err != nil {
		return nil, err
	}

	b.publishComplaintFiled(ctx, complaint)
	return &complaint, nil
}

func (b *SimulatedBackend) FetchNotifications(ctx context.Context) ([]domain.Notification, error) {
	if err := b.delay(ctx, b.delays.FetchNotifications); err != nil {
		return nil, err
	}
	out := make([]domain.Notification, len(b.notifications))
	copy(out, b.notifications)
	return out, nil
}

// MarkNotificationRead simulates latency only. Read-state stays local to the
// session, a known inconsistency carried over from the original.
func (b *SimulatedBackend) MarkNotificationRead(ctx context.Context, id string) error {
	return b.delay(ctx, b.delays.MarkNotificationRead)
}

func (b *SimulatedBackend) findEquipment(id string) *domain.Equipment {
	for i := range b.catalog {
		if b.catalog[i].ID == id {
			return &b.catalog[i]
		}
	}
	return nil
}

// loadBookings reads the durable list without paying the fetch latency; the
// public operation already charged it.
func (b *SimulatedBackend) loadBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	found, err := b.loadList(ctx, BookingsKey, &bookings)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

func (b *SimulatedBackend) loadComplaints(ctx context.Context) ([]domain.StudentComplaint, error) {
	var complaints []domain.StudentComplaint
	found, err := b.loadList(ctx, ComplaintsKey, &complaints)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.StudentComplaint{}, nil
	}
	return complaints, nil
}

func (b *SimulatedBackend) loadList(ctx context.Context, key string, out any) (bool, error) {
	data, found, err := b.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (b *SimulatedBackend) saveList(ctx context.Context, key string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := b.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (b *SimulatedBackend) publishBookingCreated(ctx context.Context, booking domain.Booking) {
	if b.events == nil {
		return
	}
	evt := ports.BookingCreatedEvent{
		BookingID:     booking.ID,
		EquipmentID:   booking.EquipmentID,
		EquipmentName: booking.EquipmentName,
		StudentName:   booking.StudentName,
		StartDate:     booking.StartDate,
		EndDate:       booking.EndDate,
	}
	if err := b.events.PublishBookingCreated(ctx, evt); err != nil {
		log.Printf("backend: publish booking created failed: %v", err)
	}
}

func (b *SimulatedBackend) publishComplaintFiled(ctx context.Context, complaint domain.StudentComplaint) {
	if b.events == nil {
		return
	}
	evt := ports.ComplaintFiledEvent{
		ComplaintID: complaint.ID,
		Lab:         complaint.Lab,
		Type:        complaint.Type,
	}
	if complaint.EquipmentID != nil {
		evt.EquipmentID = *complaint.EquipmentID
	}
	if err := b.events.PublishComplaintFiled(ctx, evt); err != nil {
		log.Printf("backend: publish complaint filed failed: %v", err)
	}
}
