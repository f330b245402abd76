package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Server   ServerConfig   `yaml:"server" json:"server"`
	Storage  StorageConfig  `yaml:"storage" json:"storage"`
	Calendar CalendarConfig `yaml:"calendar" json:"calendar"`
	UI       UIConfig       `yaml:"ui" json:"ui"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

type StorageConfig struct {
	// Driver is "file", "sqlite" or "memory".
	Driver  string `yaml:"driver" json:"driver"`
	DataDir string `yaml:"data_dir" json:"data_dir"`
}

type CalendarConfig struct {
	// WeekStart is the weekday shown in the first grid column.
	WeekStart string `yaml:"week_start" json:"week_start"`
}

type UIConfig struct {
	DefaultView string `yaml:"default_view" json:"default_view"`
}

func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8484"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "file"
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
	if c.Calendar.WeekStart == "" {
		c.Calendar.WeekStart = "sunday"
	}
	if c.UI.DefaultView == "" {
		c.UI.DefaultView = "split"
	}
}

// Load reads the yaml config at path. A missing file yields the defaults;
// the tool is expected to run without any config at all.
func Load(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.ApplyDefaults()
			c.ApplyEnv()
			return &c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	c.ApplyEnv()
	return &c, nil
}
