package config

import (
	"crypto/rand"
	"crypto/rsa"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AllowedOrigins []string

	// StoreDriver selects the durable backing: memory, redis or postgres.
	StoreDriver   string
	RedisAddress  string
	RedisPassword string
	StorePrefix   string
	DatabaseURL   string

	// RabbitMQURL is optional; event publishing is disabled when empty.
	RabbitMQURL     string
	EventsQueueName string

	JWTPrivateKey *rsa.PrivateKey
	JWTPublicKey  *rsa.PublicKey

	// LatencyScale divides every simulated delay; 0 keeps the defaults.
	LatencyScale int
}

func Load() *Config {
	// A local .env is a convenience, not a requirement.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	driver := strings.ToLower(os.Getenv("STORE_DRIVER"))
	if driver == "" {
		driver = "memory"
	}
	switch driver {
	case "memory", "redis", "postgres":
	default:
		panic("STORE_DRIVER must be one of memory, redis, postgres")
	}

	dbURL := os.Getenv("DB_CONNECTION_STRING")
	if driver == "postgres" && dbURL == "" {
		panic("DB_CONNECTION_STRING environment variable is required for the postgres store")
	}

	redisAddr := os.Getenv("REDIS_ADDRESS")
	if driver == "redis" && redisAddr == "" {
		redisAddr = "127.0.0.1:6379"
	}

	queueName := os.Getenv("PORTAL_EVENTS_QUEUE")
	if queueName == "" {
		queueName = "portal-events"
	}

	prefix := os.Getenv("STORE_PREFIX")
	if prefix == "" {
		prefix = "portal"
	}

	scale := 0
	if v := os.Getenv("LATENCY_SCALE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			panic("LATENCY_SCALE must be a non-negative integer")
		}
		scale = n
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if s := strings.TrimSpace(o); s != "" {
			origins = append(origins, s)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	privateKey, publicKey := loadOrGenerateKeys()

	return &Config{
		Port:            port,
		AllowedOrigins:  origins,
		StoreDriver:     driver,
		RedisAddress:    redisAddr,
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		StorePrefix:     prefix,
		DatabaseURL:     dbURL,
		RabbitMQURL:     os.Getenv("RABBITMQ_URL"),
		EventsQueueName: queueName,
		JWTPrivateKey:   privateKey,
		JWTPublicKey:    publicKey,
		LatencyScale:    scale,
	}
}

// loadOrGenerateKeys loads the RSA signing pair from PEM files when the
// paths are configured. Without them it generates an ephemeral pair, which
// invalidates outstanding tokens on restart; acceptable for the demo
// credential setup, logged so nobody ships it by accident.
func loadOrGenerateKeys() (*rsa.PrivateKey, *rsa.PublicKey) {
	privateKeyPath := os.Getenv("PRIVATE_KEY_PATH")
	publicKeyPath := os.Getenv("PUBLIC_KEY_PATH")

	if privateKeyPath == "" && publicKeyPath == "" {
		log.Println("PRIVATE_KEY_PATH not set; generating an ephemeral RSA keypair")
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic("Failed to generate RSA keypair: " + err.Error())
		}
		return key, &key.PublicKey
	}

	privateKey, err := loadPrivateKey(privateKeyPath)
	if err != nil {
		panic("Failed to load private key: " + err.Error())
	}
	publicKey, err := loadPublicKey(publicKeyPath)
	if err != nil {
		panic("Failed to load public key: " + err.Error())
	}
	return privateKey, publicKey
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	keyData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jwt.ParseRSAPrivateKeyFromPEM(keyData)
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	keyData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jwt.ParseRSAPublicKeyFromPEM(keyData)
}

// ScaleDelay divides d by the configured latency scale. A zero scale leaves
// the default latency profile untouched.
func (c *Config) ScaleDelay(d time.Duration) time.Duration {
	if c.LatencyScale <= 1 {
		return d
	}
	return d / time.Duration(c.LatencyScale)
}
