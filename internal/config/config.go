package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Everything here is
// passed down explicitly; nothing else reads the environment.
type Config struct {
	SQLite   SQLiteConfig
	Server   ServerConfig
	Search   SearchConfig
	Geocoder GeocoderConfig
}

// SQLiteConfig holds database configuration.
type SQLiteConfig struct {
	Path string
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// SearchConfig holds matching and ranking configuration.
type SearchConfig struct {
	// DefaultRadiusKm bounds the geofilter when a location resolves.
	DefaultRadiusKm float64
	// DefaultTopN and MaxTopN cap result list sizes.
	DefaultTopN int
	MaxTopN     int
	// StrictTags hard-excludes tag misses instead of soft-warning.
	StrictTags bool
}

// GeocoderConfig holds the Geoapify geocoding configuration. The bias point
// disambiguates short queries toward the operating city.
type GeocoderConfig struct {
	APIKey       string
	BaseURL      string
	BiasLat      float64
	BiasLon      float64
	RegionSuffix string
	Timeout      int
	Enabled      bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "foody_data.sqlite"),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Search: SearchConfig{
			DefaultRadiusKm: getEnvAsFloat("SEARCH_RADIUS_KM", 10),
			DefaultTopN:     getEnvAsInt("SEARCH_DEFAULT_TOP_N", 50),
			MaxTopN:         getEnvAsInt("SEARCH_MAX_TOP_N", 50),
			StrictTags:      getEnvAsBool("MATCH_STRICT_TAGS", false),
		},
		Geocoder: GeocoderConfig{
			APIKey:  getEnv("GEOAPIFY_API_KEY", ""),
			BaseURL: getEnv("GEOAPIFY_BASE_URL", "https://api.geoapify.com/v1/geocode/search"),
			// Ho Chi Minh City center, same bias the crawler used.
			BiasLat:      getEnvAsFloat("GEOCODER_BIAS_LAT", 10.762622),
			BiasLon:      getEnvAsFloat("GEOCODER_BIAS_LON", 106.660172),
			RegionSuffix: getEnv("GEOCODER_REGION_SUFFIX", "Ho Chi Minh City"),
			Timeout:      getEnvAsInt("GEOCODER_TIMEOUT", 10),
			Enabled:      getEnv("GEOAPIFY_API_KEY", "") != "",
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}
