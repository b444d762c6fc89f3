package config

import "os"

// Config is everything the server reads from the environment. APIBase and
// PublicAPIBase are configured independently: the first is how this process
// reaches the API (a compose service name in Docker), the second is how a
// browser would, and the operator keeps them pointed at the same backend.
type Config struct {
	// APIBase is the pipeline API base URL for server-side fetches.
	APIBase string
	// PublicAPIBase is the browser-reachable API base URL, surfaced to
	// templates only. Never used for outbound calls from this process.
	PublicAPIBase string
	// Port the HTTP server listens on.
	Port string
}

func FromEnv() Config {
	return Config{
		APIBase:       getenv("API_BASE", "http://api:8000"),
		PublicAPIBase: getenv("PUBLIC_API_BASE", "http://localhost:8000"),
		Port:          getenv("PORT", "8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
