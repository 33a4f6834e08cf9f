package services

import "errors"

var (
	// ErrInvalidCredentials is returned when a login attempt does not match
	// the credential list.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEquipmentNotFound is raised by the backend when a booking or lookup
	// references an equipment id absent from the catalog.
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrCommentRequired rejects a complaint status transition to any
	// non-pending status without an admin comment.
	ErrCommentRequired = errors.New("admin comment required")

	// ErrValidation covers missing required form fields, caught before any
	// backend call.
	ErrValidation = errors.New("missing required fields")

	ErrComplaintNotFound = errors.New("complaint not found")
	ErrNoEditInProgress  = errors.New("no edit in progress")
)
