package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	AppVersion             = "v1.3.0"
	AppPort                = "3000"
	AppDebug               = false
	AppBasePath            = ""
	AppBasicAuthCredential []string
	AppTrustedProxies      []string

	PathStorages = "storages"

	DBDriver = "sqlite"
	DBURI    = "file:storages/kinesia.db?_foreign_keys=on"

	ValkeyEnabled   = false
	ValkeyAddress   = "localhost:6379"
	ValkeyPassword  = ""
	ValkeyDB        = 0
	ValkeyKeyPrefix = "kinesia:"

	// Notion edge API
	NotionBaseURL    = "https://edge.kinesia.app/functions/v1"
	NotionToken      = ""
	NotionVersion    = "2022-06-28"
	NotionTimeout    = 30 * time.Second
	NotionMaxRetries = 3
	NotionRetryDelay = 500 * time.Millisecond

	// Security
	AppSecretKey = "changeme_please_change_me_in_prod_12345"

	// Default owner used by single-tenant call sites.
	DefaultOwnerID = "local"
)

func init() {
	if v := strings.TrimSpace(os.Getenv("NOTION_TOKEN")); v != "" {
		NotionToken = v
	}
	if v := strings.TrimSpace(os.Getenv("NOTION_BASE_URL")); v != "" {
		NotionBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("NOTION_VERSION")); v != "" {
		NotionVersion = v
	}
	if v := strings.TrimSpace(os.Getenv("NOTION_TIMEOUT_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			NotionTimeout = time.Duration(n) * time.Millisecond
		}
	}
	if v := strings.TrimSpace(os.Getenv("NOTION_MAX_RETRIES")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			NotionMaxRetries = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("APP_SECRET_KEY")); v != "" {
		AppSecretKey = v
	}
	if v := strings.TrimSpace(os.Getenv("VALKEY_ENABLED")); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			ValkeyEnabled = true
		case "0", "false", "no", "off":
			ValkeyEnabled = false
		}
	}
	if v := strings.TrimSpace(os.Getenv("VALKEY_ADDRESS")); v != "" {
		ValkeyAddress = v
	}
	if v := strings.TrimSpace(os.Getenv("VALKEY_PASSWORD")); v != "" {
		ValkeyPassword = v
	}
	if v := strings.TrimSpace(os.Getenv("VALKEY_DB")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			ValkeyDB = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("VALKEY_KEY_PREFIX")); v != "" {
		ValkeyKeyPrefix = v
	}
}
