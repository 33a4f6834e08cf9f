package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/adapters/handler"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/adapters/messaging"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/adapters/middleware"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/adapters/repository"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/config"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/ports"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/services"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/seed"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	var (
		store       ports.ListStore
		db          *sql.DB
		redisClient *redis.Client
	)

	switch cfg.StoreDriver {
	case "redis":
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		log.Println("Connected to Redis successfully")
		store = repository.NewRedisStore(redisClient, cfg.StorePrefix)
	case "postgres":
		var err error
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()
		sqlStore := repository.NewSQLStore(db)
		if err := sqlStore.EnsureSchema(ctx); err != nil {
			log.Fatalf("failed to prepare database: %v", err)
		}
		store = sqlStore
	default:
		store = repository.NewMemoryStore()
	}

	var events ports.PortalEventPublisher
	if cfg.RabbitMQURL != "" {
		broker, err := messaging.NewRabbitMQBroker(cfg.RabbitMQURL, cfg.EventsQueueName)
		if err != nil {
			log.Printf("WARNING - event publishing disabled: %v", err)
		} else {
			defer broker.Close()
			log.Println("Connected to RabbitMQ")
			events = broker
		}
	}

	backend := services.NewSimulatedBackend(
		store,
		events,
		scaledDelays(cfg),
		seed.Equipment(),
		seed.Notifications(),
	)

	authService := services.NewCredentialAuthService(seed.Users(), cfg.JWTPrivateKey)
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTPublicKey)

	studentSessions := services.NewStudentSessionManager(backend)
	adminSessions := services.NewAdminSessionManager(services.AdminSeed{
		Equipment:       seed.Equipment(),
		Complaints:      seed.Complaints(),
		Licenses:        seed.SoftwareLicenses(),
		MaintenanceLogs: seed.MaintenanceLogs(),
		Requests:        seed.Requests(),
		LabStats:        seed.LabStats(),
	})

	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentSessions)
	adminHandler := handler.NewAdminHandler(adminSessions)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	mux := http.NewServeMux()

	// Health endpoints (OpenShift compatible)
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/health/ready", healthHandler.Ready)
	mux.HandleFunc("/health/live", healthHandler.Live)

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/login", authHandler.Login)

	// Lab room numbers for the complaint form dropdown.
	labs := seed.Labs()
	mux.HandleFunc("/labs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(labs)
	})

	student := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.RequireRole([]string{"student"}, h)
	}
	mux.HandleFunc("/student/state", student(studentHandler.State))
	mux.HandleFunc("/student/view", student(studentHandler.ActivateView))
	mux.HandleFunc("/student/equipment/filter", student(studentHandler.FilterEquipment))
	mux.HandleFunc("/student/equipment/page", student(studentHandler.Page))
	mux.HandleFunc("/student/bookings", student(studentHandler.CreateBooking))
	mux.HandleFunc("/student/bookings/filter", student(studentHandler.FilterBookings))
	mux.HandleFunc("/student/bookings/cancel", student(studentHandler.CancelBooking))
	mux.HandleFunc("/student/complaints", student(studentHandler.SubmitComplaint))
	mux.HandleFunc("/student/notifications/read", student(studentHandler.MarkNotificationRead))

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.RequireRole([]string{"admin"}, h)
	}
	mux.HandleFunc("/admin/state", admin(adminHandler.State))
	mux.HandleFunc("/admin/tab", admin(adminHandler.SetTab))
	mux.HandleFunc("/admin/search", admin(adminHandler.Search))
	mux.HandleFunc("/admin/equipment", admin(adminHandler.Equipment))
	mux.HandleFunc("/admin/equipment/edit/begin", admin(adminHandler.BeginEdit))
	mux.HandleFunc("/admin/equipment/edit/draft", admin(adminHandler.EditDraft))
	mux.HandleFunc("/admin/equipment/edit/commit", admin(adminHandler.CommitEdit))
	mux.HandleFunc("/admin/equipment/edit/cancel", admin(adminHandler.CancelEdit))
	mux.HandleFunc("/admin/complaints", admin(adminHandler.Complaints))
	mux.HandleFunc("/admin/complaints/status", admin(adminHandler.UpdateComplaintStatus))

	root := middleware.CORSMiddleware(cfg.AllowedOrigins)(middleware.Metrics(mux))

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, root); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}

// scaledDelays applies the configured latency scale to the default profile.
func scaledDelays(cfg *config.Config) services.Delays {
	d := services.DefaultDelays()
	d.FetchEquipment = cfg.ScaleDelay(d.FetchEquipment)
	d.FetchBookings = cfg.ScaleDelay(d.FetchBookings)
	d.CreateBooking = cfg.ScaleDelay(d.CreateBooking)
	d.CancelBooking = cfg.ScaleDelay(d.CancelBooking)
	d.FetchComplaints = cfg.ScaleDelay(d.FetchComplaints)
	d.SubmitComplaint = cfg.ScaleDelay(d.SubmitComplaint)
	d.FetchNotifications = cfg.ScaleDelay(d.FetchNotifications)
	d.MarkNotificationRead = cfg.ScaleDelay(d.MarkNotificationRead)
	return d
}
