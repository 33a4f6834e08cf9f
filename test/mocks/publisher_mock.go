package mocks

import (
	"context"
	"sync"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/ports"
)

// MockPortalEventPublisher implements ports.PortalEventPublisher for testing.
// This mock allows us to test event emission without a real RabbitMQ connection.
type MockPortalEventPublisher struct {
	mu sync.RWMutex

	// Track published events for verification
	BookingEvents   []ports.BookingCreatedEvent
	ComplaintEvents []ports.ComplaintFiledEvent

	// Error injection for testing error scenarios
	PublishError error
}

// Ensure MockPortalEventPublisher implements ports.PortalEventPublisher at compile time.
var _ ports.PortalEventPublisher = (*MockPortalEventPublisher)(nil)

// NewMockPortalEventPublisher creates a new mock publisher.
func NewMockPortalEventPublisher() *MockPortalEventPublisher {
	return &MockPortalEventPublisher{}
}

// PublishBookingCreated captures booking events for verification.
func (m *MockPortalEventPublisher) PublishBookingCreated(ctx context.Context, evt ports.BookingCreatedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PublishError != nil {
		return m.PublishError
	}
	m.BookingEvents = append(m.BookingEvents, evt)
	return nil
}

// PublishComplaintFiled captures complaint events for verification.
func (m *MockPortalEventPublisher) PublishComplaintFiled(ctx context.Context, evt ports.ComplaintFiledEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PublishError != nil {
		return m.PublishError
	}
	m.ComplaintEvents = append(m.ComplaintEvents, evt)
	return nil
}

// Reset clears all tracking data.
func (m *MockPortalEventPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.BookingEvents = nil
	m.ComplaintEvents = nil
	m.PublishError = nil
}
