package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/adapters/messaging"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/config"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/ports"
)

// The notifier drains the portal events queue and records each booking and
// complaint as it happens. It stands in for the mail/push integrations the
// lab staff would hang off these events.
func main() {
	log.Println("Starting portal notifier service...")

	cfg := config.Load()
	if cfg.RabbitMQURL == "" {
		log.Fatal("notifier: RABBITMQ_URL is required")
	}

	broker, err := messaging.NewRabbitMQBroker(cfg.RabbitMQURL, cfg.EventsQueueName)
	if err != nil {
		log.Fatalf("notifier: failed to connect to RabbitMQ: %v", err)
	}
	defer broker.Close()
	log.Println("notifier: connected to RabbitMQ")

	deliveries, err := broker.Consume("portal-notifier")
	if err != nil {
		log.Fatalf("notifier: failed to start consuming: %v", err)
	}

	var processed atomic.Int64

	// Start health check HTTP server
	healthMux := http.NewServeMux()
	healthMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":    "UP",
			"component": "portal-notifier",
			"processed": processed.Load(),
		})
	})

	healthServer := &http.Server{
		Addr:    ":8090",
		Handler: healthMux,
	}

	go func() {
		log.Println("notifier: starting health check server on :8090")
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("notifier: health server error: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		log.Println("notifier: waiting for portal events...")
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					log.Println("notifier: delivery channel closed")
					return
				}
				handleDelivery(delivery.Body)
				if err := delivery.Ack(false); err != nil {
					log.Printf("notifier: failed to ack delivery: %v", err)
				}
				processed.Add(1)
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Printf("notifier: received signal %v, initiating shutdown...", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("notifier: error shutting down health server: %v", err)
	}

	log.Println("notifier: shutdown complete")
}

func handleDelivery(body []byte) {
	var envelope messaging.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("notifier: discarding malformed event: %v", err)
		return
	}

	switch envelope.Kind {
	case "booking.created":
		var evt ports.BookingCreatedEvent
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			log.Printf("notifier: bad booking payload for event %s: %v", envelope.EventID, err)
			return
		}
		log.Printf("notifier: booking %s created for %s (%s to %s) by %s",
			evt.BookingID, evt.EquipmentName, evt.StartDate, evt.EndDate, evt.StudentName)
	case "complaint.filed":
		var evt ports.ComplaintFiledEvent
		if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
			log.Printf("notifier: bad complaint payload for event %s: %v", envelope.EventID, err)
			return
		}
		log.Printf("notifier: complaint %s filed for lab %s (%s)",
			evt.ComplaintID, evt.Lab, evt.Type)
	default:
		log.Printf("notifier: ignoring unknown event kind %q (%s)", envelope.Kind, envelope.EventID)
	}
}
