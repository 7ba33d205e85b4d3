// Package utils holds small helpers shared by the examples.
package utils

import "os"

// GetEnvOrDefault returns the value of an environment variable, or the
// given default when the variable is unset
func GetEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
