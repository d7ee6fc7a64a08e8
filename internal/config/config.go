package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	LogLevel    string

	ListenAddr string

	// ExportDir is where the PDF export collaborator writes rendered
	// invoices.
	ExportDir string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "invoicedesk"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		LogLevel:    strings.ToLower(getenv("LOG_LEVEL", "info")),
		ListenAddr:  getenv("LISTEN_ADDR", ":8080"),
		ExportDir:   getenv("EXPORT_DIR", "exports"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Module provides application and editor configuration.
var Module = fx.Module("config",
	fx.Provide(
		Load,
		NewEditorConfigHolder,
	),
)
