package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings needed to run the application.
// Values are read from environment variables, optionally seeded from a
// config/env/<GO_ENV>.env file.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:"8080"`                // Server listen port
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`          // Database connection URL
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"quimica"`      // Database name
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`              // Allowed origins (comma separated, * = all)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`// Allow credentials in CORS requests

	// Firebase configuration
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`         // Firebase project ID
	FirebaseCredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH"`   // Path to the service account JSON
	FirebaseStorageBucket   string `env:"FIREBASE_STORAGE_BUCKET"`     // Cloud Storage bucket for uploaded images

	// SMTP configuration (quote notification emails)
	SMTPHost string `env:"SMTP_HOST"`                     // SMTP server host
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`    // SMTP server port
	SMTPUser string `env:"SMTP_USER"`                     // SMTP username
	SMTPPass string `env:"SMTP_PASS"`                     // SMTP password
	SMTPFrom string `env:"SMTP_FROM"`                     // From address for outgoing mail

	// Company identity (printed on quote PDFs and emails)
	CompanyName    string `env:"COMPANY_NAME" envDefault:"Química Industrial Perú"` // Legal company name
	CompanyEmail   string `env:"COMPANY_EMAIL"`                                     // Inbox that receives new quote notifications
	CompanyPhone   string `env:"COMPANY_PHONE"`                                     // Company phone printed on documents
	CompanyAddress string `env:"COMPANY_ADDRESS"`                                   // Company address printed on documents

	// Sites served by this backend (comma separated subset of site1..site5)
	SiteIDs string `env:"SITE_IDS" envDefault:"site1,site2,site3,site4,site5"`

	// Upload pipeline limits
	UploadMaxFileSize  int64 `env:"UPLOAD_MAX_FILE_SIZE" envDefault:"3145728"` // Max size per image part (bytes)
	UploadMaxDimension int   `env:"UPLOAD_MAX_DIMENSION" envDefault:"1600"`    // Bound for the longest image side (px)
	UploadJPEGQuality  int   `env:"UPLOAD_JPEG_QUALITY" envDefault:"80"`       // JPEG quality for re-encoded images
}

// getEnvPath returns the path to the env file for the current environment.
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt.Printf because the logger may not be initialized yet
		fmt.Printf("Cannot determine working directory: %v\n", err)
		return ""
	}

	// Walk up until a config/env directory is found
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig reads the configuration from the environment, seeded from the
// env file when one exists. Returns nil when required settings are missing.
func NewConfig() *Configuration {
	if envPath := getEnvPath(); envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// Missing env file is fine when the variables come from the environment
			fmt.Printf("Could not load env file at %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Failed to parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
