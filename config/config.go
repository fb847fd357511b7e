package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	DB, err = gorm.Open(sqlite.Open(LeadsDB()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AdminUser and AdminPass carry defaults for local development only; any real
// deployment must override them through the environment.
func AdminUser() string { return getenv("ADMIN_USER", "admin") }

func AdminPass() string { return getenv("ADMIN_PASS", "arslanops2024") }

func LeadsDB() string { return getenv("LEADS_DB", "leads.db") }

func ContentFile() string { return getenv("CONTENT_FILE", "content.json") }

func ReportsFile() string { return getenv("REPORTS_FILE", "reports.json") }

func UploadsDir() string { return getenv("UPLOADS_DIR", "./uploads") }

// ProductionOrigin is an extra allowed CORS origin, e.g. a preview deployment.
func ProductionOrigin() string { return os.Getenv("PRODUCTION_ORIGIN") }

// ExternalURL is the public base URL of this service, used by the keep-alive
// pinger. Empty disables the pinger.
func ExternalURL() string { return os.Getenv("RENDER_EXTERNAL_URL") }
