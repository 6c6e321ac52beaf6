package realtime

import (
	"fmt"
	"strings"
)

// Placeholder values shipped in sample environment files. A credential equal
// to its placeholder counts as missing.
const (
	PlaceholderDatabaseURL  = "your_database_connection_string"
	PlaceholderCDNCloudName = "your_cloudinary_cloud_name"
	PlaceholderCDNAPIKey    = "your_cloudinary_api_key"
)

type Credentials struct {
	DatabaseURL  string
	CDNCloudName string
	CDNAPIKey    string
}

// Check returns an error wrapping ErrConfigurationMissing that names every
// credential that is empty or still set to its placeholder.
func (c Credentials) Check() error {
	var missing []string
	if !usable(c.DatabaseURL, PlaceholderDatabaseURL) {
		missing = append(missing, "database connection string (DATABASE_URL)")
	}
	if !usable(c.CDNCloudName, PlaceholderCDNCloudName) {
		missing = append(missing, "CDN cloud name (CLOUDINARY_CLOUD_NAME)")
	}
	if !usable(c.CDNAPIKey, PlaceholderCDNAPIKey) {
		missing = append(missing, "CDN API key (CLOUDINARY_API_KEY)")
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s not set", ErrConfigurationMissing, strings.Join(missing, ", "))
}

func usable(value, placeholder string) bool {
	value = strings.TrimSpace(value)
	return value != "" && value != placeholder
}
