package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is loaded once at startup and treated as immutable afterwards.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	Port      string `envconfig:"APP_PORT" default:"8082"`
	OriginURL string `envconfig:"ORIGIN_URL" default:""`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"food_order"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`

	Argon2TimeCost    uint32 `envconfig:"ARGON2_TIME_COST" default:"0"`
	Argon2MemoryKiB   uint32 `envconfig:"ARGON2_MEMORY_KIB" default:"0"`
	Argon2Parallelism uint8  `envconfig:"ARGON2_PARALLELISM" default:"0"`

	JWTSecret          string `envconfig:"JWT_SECRET" default:"secret"`
	AccessTokenMinutes int    `envconfig:"ACCESS_TOKEN_MINUTES" default:"30"`
	RefreshTokenDays   int    `envconfig:"REFRESH_TOKEN_DAYS" default:"7"`

	RedisURL      string `envconfig:"REDIS_URL" default:""`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`

	SMTPHost string `envconfig:"SMTP_HOST" default:""`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser string `envconfig:"SMTP_USER" default:""`
	SMTPPass string `envconfig:"SMTP_PASS" default:""`
	SMTPFrom string `envconfig:"SMTP_FROM" default:""`
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	AppConfig = &cfg

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}
