package models

import "time"

// Config represents the application configuration
type Config struct {
	Email          EmailConfig    `yaml:"email"`
	AllowedSenders []string       `yaml:"allowedSenders"`
	Database       DatabaseConfig `yaml:"database"`
	Routes         RouteConfig    `yaml:"routes"`
	Metrics        MetricsConfig  `yaml:"metrics"`
}

// EmailConfig represents IMAP email configuration
type EmailConfig struct {
	Imap           string        `yaml:"imap"`
	Login          string        `yaml:"login"`
	Password       string        `yaml:"password"`
	RefreshTime    time.Duration `yaml:"refreshTime"`
	MailBox        string        `yaml:"mailbox"`
	ValidityWindow time.Duration `yaml:"validityWindow"`
}

// DatabaseConfig locates the SQLite job log.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// RouteConfig configures the directions API used for route lookups.
type RouteConfig struct {
	BaseURL      string `yaml:"baseUrl"`
	APIKey       string `yaml:"apiKey"`
	Mode         string `yaml:"mode"`
	RegionSuffix string `yaml:"regionSuffix"`
}

// MetricsConfig configures the Prometheus metrics endpoint.
type MetricsConfig struct {
	Listen string `yaml:"listen"`
}
