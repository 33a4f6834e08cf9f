package domain

import "time"

// StudentComplaintStatus is the status set visible to students. The admin
// console tracks the richer ComplaintStatus set below.
type StudentComplaintStatus string

const (
	StudentComplaintPending  StudentComplaintStatus = "pending"
	StudentComplaintResolved StudentComplaintStatus = "resolved"
)

// StudentComplaint is the student-facing complaint shape, read-only for the
// student once filed.
type StudentComplaint struct {
	ID            string                 `json:"id"`
	EquipmentID   *string                `json:"equipmentId,omitempty"`
	EquipmentName *string                `json:"equipmentName,omitempty"`
	Lab           string                 `json:"lab"`
	Type          string                 `json:"type"`
	Description   string                 `json:"description"`
	Status        StudentComplaintStatus `json:"status"`
	Date          string                 `json:"date"`
	ImageURL      *string                `json:"imageUrl,omitempty"`
}

// ComplaintDraft is the student submission before the backend assigns id,
// date and status. Optional references stay pointers so "not provided" is
// distinguishable from "explicitly blank".
type ComplaintDraft struct {
	EquipmentID *string `json:"equipmentId,omitempty"`
	Lab         string  `json:"lab"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type ComplaintType string

const (
	ComplaintEquipment ComplaintType = "equipment"
	ComplaintFacility  ComplaintType = "facility"
	ComplaintOther     ComplaintType = "other"
)

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintRejected   ComplaintStatus = "rejected"
)

// Complaint is the admin-side complaint record. ResolvedAt is only stamped
// when the status transitions to resolved; AdminComment is required for any
// non-pending status transition.
type Complaint struct {
	ID            string          `json:"id"`
	StudentID     string          `json:"studentId"`
	StudentName   string          `json:"studentName"`
	StudentEmail  string          `json:"studentEmail"`
	EquipmentID   *string         `json:"equipmentId,omitempty"`
	EquipmentName *string         `json:"equipmentName,omitempty"`
	ComplaintType ComplaintType   `json:"complaintType"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Status        ComplaintStatus `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	ResolvedAt    *time.Time      `json:"resolvedAt,omitempty"`
	AdminComment  *string         `json:"adminComment,omitempty"`
}
