package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, once per process. It reports the file it loaded, if any.
func LoadEnv() (string, error) {
	var loaded string
	var loadErr error
	once.Do(func() {
		envFile := findEnvFile()
		if envFile == "" {
			return
		}
		if err := godotenv.Load(envFile); err != nil {
			loadErr = err
			return
		}
		loaded = envFile
	})
	return loaded, loadErr
}

func findEnvFile() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
