package domain

type MaintenanceStatus string

const (
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
	MaintenancePending    MaintenanceStatus = "pending"
)

// MaintenanceLog records service work on a piece of equipment. EquipmentID
// should reference the catalog but lookups must stay nil-safe: deleting
// equipment does not cascade here.
type MaintenanceLog struct {
	ID          string            `json:"id"`
	EquipmentID string            `json:"equipmentId"`
	Date        string            `json:"date"`
	Technician  string            `json:"technician"`
	Description string            `json:"description"`
	Status      MaintenanceStatus `json:"status"`
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// Request is an equipment loan request on the admin side. The approval flow
// itself is stubbed; requests are seeded read-only data.
type Request struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	EquipmentID string        `json:"equipmentId"`
	Status      RequestStatus `json:"status"`
	RequestDate string        `json:"requestDate"`
	Duration    int           `json:"duration"`
	Purpose     string        `json:"purpose,omitempty"`
}

type LabUsageStats struct {
	LabID            string      `json:"labId"`
	Category         LabCategory `json:"category"`
	TotalEquipment   int         `json:"totalEquipment"`
	ActiveBookings   int         `json:"activeBookings"`
	MaintenanceCount int         `json:"maintenanceCount"`
	UtilizationRate  float64     `json:"utilizationRate"`
	PeakHours        []string    `json:"peakHours,omitempty"`
}
