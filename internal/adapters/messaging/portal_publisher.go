package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/ports"
)

var _ ports.PortalEventPublisher = (*RabbitMQBroker)(nil)

// Envelope wraps every portal event with an id, a kind and the emit time so
// consumers can dedupe and order without knowing the payload shape.
type Envelope struct {
	EventID   string          `json:"event_id"`
	Kind      string          `json:"kind"`
	EmittedAt time.Time       `json:"emitted_at"`
	Payload   json.RawMessage `json:"payload"`
}

func (rmq *RabbitMQBroker) PublishBookingCreated(ctx context.Context, evt ports.BookingCreatedEvent) error {
	return rmq.publish(ctx, "booking.created", evt)
}

func (rmq *RabbitMQBroker) PublishComplaintFiled(ctx context.Context, evt ports.ComplaintFiledEvent) error {
	return rmq.publish(ctx, "complaint.filed", evt)
}

func (rmq *RabbitMQBroker) publish(ctx context.Context, kind string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	body, err := json.Marshal(Envelope{
		EventID:   uuid.NewString(),
		Kind:      kind,
		EmittedAt: time.Now().UTC(),
		Payload:   raw,
	})
	if err != nil {
		return err
	}

	// Respect context deadline
	if deadline, ok := ctx.Deadline(); ok {
		if time.Until(deadline) <= 0 {
			return ctx.Err()
		}
	}

	// Use circuit breaker to protect the RabbitMQ publish operation
	_, err = rmq.cb.Execute(func() (interface{}, error) {
		err := rmq.ch.PublishWithContext(
			ctx,
			"",            // exchange (default)
			rmq.queueName, // routing key == queue name
			false,         // mandatory
			false,         // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Body:         body,
			},
		)
		return nil, err
	})
	return err
}
