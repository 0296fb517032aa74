package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	LogLevel  string
	LogFormat string

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	Seed SeedConfig

	// InvoiceNumberSeed is suggested when no invoice exists yet.
	InvoiceNumberSeed string
}

// SeedConfig describes the default company created on first start.
// These are placeholder values meant to be overridden per deployment.
type SeedConfig struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyIFU     string
	CompanyVMCF    string
	CompanyPaypal  string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "facture"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),

		// sqlite keeps the service usable out of the box
		DBType:     getenv("DATABASE_TYPE", "sqlite"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "facture"),
		DBUser:     getenv("DATABASE_USER", "postgres"),
		DBPassword: getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),

		Seed: SeedConfig{
			CompanyName:    getenv("SEED_COMPANY_NAME", "Ma Société"),
			CompanyAddress: getenv("SEED_COMPANY_ADDRESS", "1 rue de l'Exemple, 75000 Paris"),
			CompanyEmail:   getenv("SEED_COMPANY_EMAIL", "contact@example.com"),
			CompanyIFU:     getenv("SEED_COMPANY_IFU", ""),
			CompanyVMCF:    getenv("SEED_COMPANY_VMCF", ""),
			CompanyPaypal:  getenv("SEED_COMPANY_PAYPAL", ""),
		},

		InvoiceNumberSeed: strings.TrimSpace(getenv("INVOICE_NUMBER_SEED", "FAC-100")),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
