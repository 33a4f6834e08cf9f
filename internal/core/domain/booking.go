package domain

// DateOnly is the layout used for calendar dates in the durable JSON layout.
// Booking and student complaint dates are date-only strings, not timestamps.
const DateOnly = "2006-01-02"

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

type Booking struct {
	ID            string        `json:"id"`
	EquipmentID   string        `json:"equipmentId"`
	EquipmentName string        `json:"equipmentName"`
	StudentName   string        `json:"studentName"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	Status        BookingStatus `json:"status"`
	ImageURL      *string       `json:"imageUrl,omitempty"`
}

// DateRange carries the requested start/end pair of a booking submission.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
