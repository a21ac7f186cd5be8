package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AdapterConfig holds configuration for the upstream adapter service
type AdapterConfig struct {
	Port            string
	UpstreamBaseURL string
	APIKey          string
	RequestTimeout  time.Duration
}

// StorefrontConfig holds configuration for the storefront BFF
type StorefrontConfig struct {
	Port          string
	APIBaseURL    string
	UseMockData   bool
	MockDelay     time.Duration
	StoreBaseURL  string
	RedisAddr     string
	RedisPassword string
	KafkaBrokers  []string
}

// LoadAdapter loads the adapter configuration from environment variables
func LoadAdapter() *AdapterConfig {
	return &AdapterConfig{
		Port:            getEnv("ADAPTER_PORT", "8090"),
		UpstreamBaseURL: getEnv("LI_API_BASE_URL", "https://api.awsli.com.br"),
		APIKey:          os.Getenv("LI_API_KEY"),
		RequestTimeout:  getEnvDuration("UPSTREAM_TIMEOUT", 8*time.Second),
	}
}

// LoadStorefront loads the storefront configuration from environment variables
func LoadStorefront() *StorefrontConfig {
	return &StorefrontConfig{
		Port:          getEnv("STOREFRONT_PORT", "8080"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8090"),
		UseMockData:   getEnvBool("USE_MOCK_DATA", false),
		MockDelay:     getEnvDuration("MOCK_DELAY", 0),
		StoreBaseURL:  getEnv("STORE_BASE_URL", "https://loja.linadesign.com.br"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		KafkaBrokers:  getEnvList("KAFKA_BROKERS"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
