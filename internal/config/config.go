package config

import "os"

// Get returns the value of an environment variable, falling back to a
// default when the variable is unset or empty. Callers load .env files
// (godotenv) before consulting this.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
