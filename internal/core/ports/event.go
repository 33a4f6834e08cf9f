package ports

import "context"

type BookingCreatedEvent struct {
	BookingID     string `json:"booking_id"`
	EquipmentID   string `json:"equipment_id"`
	EquipmentName string `json:"equipment_name"`
	StudentName   string `json:"student_name"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}

type ComplaintFiledEvent struct {
	ComplaintID string `json:"complaint_id"`
	Lab         string `json:"lab"`
	Type        string `json:"type"`
	EquipmentID string `json:"equipment_id,omitempty"`
}

// PortalEventPublisher fans portal mutations out to interested consumers.
// Publishing is best-effort: failures are logged by the caller, never
// surfaced and never retried.
type PortalEventPublisher interface {
	PublishBookingCreated(ctx context.Context, evt BookingCreatedEvent) error
	PublishComplaintFiled(ctx context.Context, evt ComplaintFiledEvent) error
}
