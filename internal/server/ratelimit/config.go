package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific
// endpoint. A Path ending in "/" matches by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific
// configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: uploads and resume parsing carry file IO and text
		// extraction cost, strictest limits
		{Path: "/files", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/files/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},

		// Tier 2: credential endpoints, kept tight against brute force
		{Path: "/auth/register", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/auth/password", Method: "PUT", Limit: 10, Window: time.Minute, Burst: 3},

		// Tier 3: entity writes
		{Path: "/profile", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/skills", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/skills/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/skills/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/goals", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/goals/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/goals/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/interests", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/interests/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/interests/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/files/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},

		// Reads fall through to the default limit; /health is unlimited
		// via the matcher special case
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
