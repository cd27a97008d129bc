package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all importer configuration.
type Config struct {
	// SchoolYear is a "YY-YY" label, "auto" for the August-15 rollover
	// rule, or empty to process every valid year.
	SchoolYear string
	// SingleSchool restricts student ingestion to one numeric school id;
	// zero means no filter.
	SingleSchool int

	SourceDir     string `validate:"required"`
	OutputBaseDir string `validate:"required"`
	// SiteLabel suffixes output file names in single-year mode.
	SiteLabel string `validate:"required"`

	// UseRaceFile and UseProgramFile switch the optional detail passes on;
	// they change how ethnicity and the program flags are derived.
	UseRaceFile    bool
	UseProgramFile bool

	DoUploads   bool
	ZipFileName string `validate:"required"`

	// UploadProtocol selects the transport: sftp or webdav.
	UploadProtocol string `validate:"oneof=sftp webdav"`
	Username       string
	Password       string
	SFTPHost       string
	SFTPPath       string
	WebDAVHost     string
	WebDAVProtocol string `validate:"oneof=http https"`
	WebDAVPath     string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with sensible
// defaults. It loads .env file if present but does not fail if missing.
func Load() (*Config, error) {
	_ = godotenv.Load() // Ignore error — .env is optional

	cfg := &Config{
		SchoolYear:     getEnv("SCHOOL_YEAR", "auto"),
		SingleSchool:   getEnvInt("SINGLE_SCHOOL", 0),
		SourceDir:      getEnv("SOURCE_DIR", "./source"),
		OutputBaseDir:  getEnv("OUTPUT_BASE_DIR", "./data"),
		SiteLabel:      getEnv("SITE_LABEL", "Kentfield"),
		UseRaceFile:    getEnvBool("USE_RACE_FILE", false),
		UseProgramFile: getEnvBool("USE_PROGRAM_FILE", false),
		DoUploads:      getEnvBool("DO_UPLOADS", false),
		ZipFileName:    getEnv("ZIP_FILE_NAME", "kentfield"),
		UploadProtocol: getEnv("UPLOAD_PROTOCOL", "webdav"),
		Username:       getEnv("UPLOAD_USERNAME", ""),
		Password:       getEnv("UPLOAD_PASSWORD", ""),
		SFTPHost:       getEnv("SFTP_HOST", ""),
		SFTPPath:       getEnv("SFTP_PATH", "."),
		WebDAVHost:     getEnv("WEBDAV_HOST", ""),
		WebDAVProtocol: getEnv("WEBDAV_PROTOCOL", "https"),
		WebDAVPath:     getEnv("WEBDAV_PATH", "/"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
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

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
