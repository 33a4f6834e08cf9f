package ports

import (
	"context"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.AuthenticatedUser, error)
}

// LabBackend is the simulated backend contract: every operation resolves
// after a fixed artificial latency and only fails for domain-level reasons
// (or a cancelled context), never for transport ones.
//
// Callers performing read-modify-write against the same durable collection
// concurrently can silently lose updates; there is no optimistic locking.
type LabBackend interface {
	FetchEquipment(ctx context.Context) ([]domain.Equipment, error)
	FetchBookings(ctx context.Context) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, equipmentID string, dates domain.DateRange, studentName string) (*domain.Booking, error)
	// CancelBooking removes the booking with the given id. An absent id is a
	// no-op, not an error.
	CancelBooking(ctx context.Context, id string) error
	FetchComplaints(ctx context.Context) ([]domain.StudentComplaint, error)
	SubmitComplaint(ctx context.Context, draft domain.ComplaintDraft) (*domain.StudentComplaint, error)
	FetchNotifications(ctx context.Context) ([]domain.Notification, error)
	// MarkNotificationRead is best-effort: it simulates latency only and
	// persists nothing. Read-state lives in the session and is lost on a
	// fresh session.
	MarkNotificationRead(ctx context.Context, id string) error
}
