package config

import (
	"os"
	"strconv"
	"strings"
)

// defaultAPIBaseURL is the production API root used when API_BASE_URL is not set.
const defaultAPIBaseURL = "https://backend.ndnb.com.np/api"

// appPathPrefix is the fixed path segment all upstream endpoints and media
// files live under.
const appPathPrefix = "/architecture-web-app"

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// APIBaseURL resolves the upstream API root once at startup. Trailing slashes
// are stripped so path joining stays predictable.
func APIBaseURL(config map[string]string) string {
	base := GetString(config, "API_BASE_URL", defaultAPIBaseURL)
	return strings.TrimRight(base, "/")
}

// AppPathPrefix returns the fixed upstream path segment under the API root.
func AppPathPrefix() string {
	return appPathPrefix
}
