package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	DatabaseURL  string
	UploadDir    string
	MockDataPath string
	APIBaseURL   string
	AppEnv       string
	Debug        bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first; variables already set in the environment win.
func Load() *Config {
	_ = godotenv.Load()

	port := getEnv("SERVER_PORT", "8080")
	return &Config{
		ServerPort:   port,
		DatabaseURL:  getEnv("DATABASE_URL", "./transactions.db"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		MockDataPath: getEnv("MOCK_DATA_PATH", "./testdata/mock_data.json"),
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:"+port),
		AppEnv:       getEnv("APP_ENV", "development"),
		Debug:        getBool("DEBUG", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return defaultValue
}
