package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	// Payment gateways
	RazorpayKey    string
	RazorpaySecret string
	CashfreeAppID  string
	CashfreeSecret string
	CashfreeEnv    string // TEST or PROD
	FrontendURL    string

	// SMTP
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// NGO identity printed on 80G certificates
	NGOName    string
	NGOPan     string
	NGO80GReg  string
	NGO12AReg  string
	NGOAddress string
	NGOPhone   string
	NGOEmail   string
	NGOWebsite string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       os.Getenv("PORT"),
		Env:        os.Getenv("ENV"),

		RazorpayKey:    os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret: os.Getenv("RAZORPAY_SECRET"),
		CashfreeAppID:  os.Getenv("CASHFREE_APP_ID"),
		CashfreeSecret: os.Getenv("CASHFREE_SECRET_KEY"),
		CashfreeEnv:    os.Getenv("CASHFREE_ENV"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		NGOName:    getEnvOrDefault("NGO_NAME", "Dhyan Foundation Guwahati"),
		NGOPan:     os.Getenv("NGO_PAN"),
		NGO80GReg:  os.Getenv("NGO_80G_REG"),
		NGO12AReg:  os.Getenv("NGO_12A_REG"),
		NGOAddress: getEnvOrDefault("NGO_ADDRESS", "Guwahati, Assam, India"),
		NGOPhone:   os.Getenv("NGO_PHONE"),
		NGOEmail:   os.Getenv("NGO_EMAIL"),
		NGOWebsite: getEnvOrDefault("NGO_WEBSITE", "https://dhyanfoundationguwahati.org"),
	}

	return config, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
