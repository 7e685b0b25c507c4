// Package config собирает настройки сервера из переменных окружения.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds runtime settings for the imagify backend.
type Config struct {
	Addr              string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	JWTSecret         string
	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string
	AllowOrigins      []string
}

func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DBHost = "localhost"
	c.DBPort = "5432"
	c.DBUser = "postgres"
	c.DBPassword = "postgres"
	c.DBName = "imagify"
	c.Currency = "INR"
	c.AllowOrigins = []string{"http://localhost:5173"}
}

// LoadConfig строит Config: сначала значения по умолчанию, затем окружение.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	setIfPresent(&cfg.Addr, "ADDR")
	setIfPresent(&cfg.DBHost, "DB_HOST")
	setIfPresent(&cfg.DBPort, "DB_PORT")
	setIfPresent(&cfg.DBUser, "DB_USER")
	setIfPresent(&cfg.DBPassword, "DB_PASSWORD")
	setIfPresent(&cfg.DBName, "DB_NAME")
	setIfPresent(&cfg.JWTSecret, "JWT_SECRET")
	setIfPresent(&cfg.RazorpayKeyID, "RAZORPAY_KEY_ID")
	setIfPresent(&cfg.RazorpayKeySecret, "RAZORPAY_KEY_SECRET")
	setIfPresent(&cfg.Currency, "CURRENCY")

	if v, ok := os.LookupEnv("ALLOW_ORIGINS"); ok && v != "" {
		cfg.AllowOrigins = strings.Split(v, ",")
	}

	return cfg
}

// DatabaseDSN возвращает DSN для подключения pgx
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func setIfPresent(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
