package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"restaurant-ordering/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	// backend
	Port      int
	DBPath    string
	JWTSecret []byte

	// client
	APIBaseURL      string
	MockLatency     time.Duration
	StrictTransport bool
	SessionFile     string
	LogLevel        string
}

// Load reads configuration from the environment, honoring a local .env
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:      getEnvInt("PORT", 8080),
		DBPath:    getEnv("DB_PATH", "restaurant_ordering.db"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "restaurant_ordering_secret_2024")),

		APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:8080/api"),
		MockLatency:     time.Duration(getEnvInt("MOCK_LATENCY_MS", 150)) * time.Millisecond,
		StrictTransport: getEnv("TRANSPORT_STRICT", "") == "true",
		SessionFile:     getEnv("SESSION_FILE", ".session.json"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// InitDB opens the backend database and migrates all models
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.RestaurantRating{},
		&models.DishRating{},
		&models.InboxMessage{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("database connected and migrated")
	return db, nil
}
