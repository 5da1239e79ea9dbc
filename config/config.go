// Package config resolves run configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Defaults reproduce the original zero-configuration behavior: read the
// standard export filename from the working directory and write all
// artifacts next to it.
const (
	DefaultInputFile = "Resumes_Submissions_Submitted.csv"
	DefaultOutputDir = "."
	DefaultLogLevel  = "info"
)

// Config holds the run settings.
type Config struct {
	InputFile string
	OutputDir string
	LogLevel  string
}

// New loads a .env file when present, then resolves settings from the
// environment with defaults.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		InputFile: getEnv("JOBLENS_INPUT_FILE", DefaultInputFile),
		OutputDir: getEnv("JOBLENS_OUTPUT_DIR", DefaultOutputDir),
		LogLevel:  getEnv("JOBLENS_LOG_LEVEL", DefaultLogLevel),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
