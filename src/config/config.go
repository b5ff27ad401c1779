package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config ค่าตั้งค่าทั้งหมดของ server ที่อ่านจาก environment
type Config struct {
	Port           string        `validate:"required,numeric"`
	MongoURI       string        `validate:"required"`
	DBName         string        `validate:"required"`
	Store          string        `validate:"oneof=mongo memory"`
	AllowedOrigins string        `validate:"required"`
	StoreTimeout   time.Duration `validate:"gt=0"`

	TokenSecret  string        `validate:"required"`
	TokenTTL     time.Duration `validate:"gt=0"`
	CookieTTL    time.Duration `validate:"gt=0"`
	CookieSecure bool

	RedisURI string

	SMTPHost string
	SMTPPort int `validate:"omitempty,min=1,max=65535"`
	SMTPUser string
	SMTPPass string
	SMTPFrom string `validate:"omitempty,email"`

	// Policy flags for behaviour the API leaves open.
	RequireAuthForWrites  bool
	AllowNegativeQuantity bool
	HashUserPasswords     bool
}

var validate = validator.New()

// Load อ่าน .env (ถ้ามี) แล้วสร้าง Config จาก environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	var err error
	cfg := &Config{
		Port:           valueOr(getenv("PORT"), "5000"),
		DBName:         valueOr(getenv("DB_NAME"), "foodiePal"),
		Store:          valueOr(getenv("STORE"), "mongo"),
		AllowedOrigins: valueOr(getenv("ALLOWED_ORIGINS"), "*"),
		TokenSecret:    getenv("ACCESS_TOKEN_SECRET"),
		RedisURI:       getenv("REDIS_URI"),
		SMTPHost:       getenv("SMTP_HOST"),
		SMTPUser:       getenv("SMTP_USER"),
		SMTPPass:       getenv("SMTP_PASS"),
		SMTPFrom:       getenv("SMTP_FROM"),
	}

	cfg.MongoURI = getenv("MONGO_URI")
	if cfg.MongoURI == "" && cfg.Store == "mongo" {
		cfg.MongoURI = atlasURI(getenv("DB_USER"), getenv("DB_PASS"), getenv("DB_CLUSTER"))
	}
	if cfg.Store == "memory" && cfg.MongoURI == "" {
		cfg.MongoURI = "memory://"
	}

	if cfg.StoreTimeout, err = durationOr(getenv("STORE_TIMEOUT"), 5*time.Second); err != nil {
		return nil, fmt.Errorf("STORE_TIMEOUT: %w", err)
	}
	if cfg.TokenTTL, err = durationOr(getenv("TOKEN_TTL"), 5*time.Hour); err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	if cfg.CookieTTL, err = durationOr(getenv("COOKIE_TTL"), 7*24*time.Hour); err != nil {
		return nil, fmt.Errorf("COOKIE_TTL: %w", err)
	}
	if cfg.CookieSecure, err = boolOr(getenv("COOKIE_SECURE"), false); err != nil {
		return nil, fmt.Errorf("COOKIE_SECURE: %w", err)
	}
	if cfg.RequireAuthForWrites, err = boolOr(getenv("REQUIRE_AUTH_FOR_WRITES"), false); err != nil {
		return nil, fmt.Errorf("REQUIRE_AUTH_FOR_WRITES: %w", err)
	}
	if cfg.AllowNegativeQuantity, err = boolOr(getenv("ALLOW_NEGATIVE_QUANTITY"), true); err != nil {
		return nil, fmt.Errorf("ALLOW_NEGATIVE_QUANTITY: %w", err)
	}
	if cfg.HashUserPasswords, err = boolOr(getenv("HASH_USER_PASSWORDS"), false); err != nil {
		return nil, fmt.Errorf("HASH_USER_PASSWORDS: %w", err)
	}
	if port := getenv("SMTP_PORT"); port != "" {
		if cfg.SMTPPort, err = strconv.Atoi(port); err != nil {
			return nil, fmt.Errorf("SMTP_PORT: %w", err)
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// SMTPConfigured รายงานว่ามีค่า SMTP ครบสำหรับส่งอีเมลหรือไม่
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0 && c.SMTPUser != "" && c.SMTPPass != "" && c.SMTPFrom != ""
}

func atlasURI(user, pass, cluster string) string {
	if user == "" || pass == "" || cluster == "" {
		return ""
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(pass), cluster)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func durationOr(v string, fallback time.Duration) (time.Duration, error) {
	if v == "" {
		return fallback, nil
	}
	return time.ParseDuration(v)
}

func boolOr(v string, fallback bool) (bool, error) {
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseBool(v)
}
