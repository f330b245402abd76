package config

import (
	"os"
	"strings"
)

// ApplyEnv overlays environment variables onto the loaded config. Variables
// win over file values so deployments can override without editing yaml.
func (c *Config) ApplyEnv() {
	if v := getEnv("DUALFOCUS_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getEnv("DUALFOCUS_STORAGE"); v != "" {
		c.Storage.Driver = strings.ToLower(v)
	}
	if v := getEnv("DUALFOCUS_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := getEnv("DUALFOCUS_WEEK_START"); v != "" {
		c.Calendar.WeekStart = strings.ToLower(v)
	}
	if v := getEnv("DUALFOCUS_VIEW"); v != "" {
		c.UI.DefaultView = strings.ToLower(v)
	}
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
