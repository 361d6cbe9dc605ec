package env

import "os"

// Get returns the named environment variable, falling back when it is unset
// or empty. Empty values are treated as unset on purpose: container runtimes
// often export blank vars for optional settings.
func Get(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
