package config

import (
	"fmt"
	"os"
	"time"

	"dispatch-move-logger/internal/models"

	"gopkg.in/yaml.v2"
)

// Defaults applied when the configuration leaves them unset.
const (
	DefaultRefreshTime    = time.Minute
	DefaultValidityWindow = 24 * time.Hour
	DefaultMailbox        = "INBOX"
	DefaultTravelMode     = "driving"
)

// Load reads the configuration from the specified YAML file and returns a Config struct
func Load(filepath string) (*models.Config, error) {
	configFile, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var config models.Config
	if err := yaml.Unmarshal(configFile, &config); err != nil {
		return nil, err
	}

	if config.Email.RefreshTime <= 0 {
		config.Email.RefreshTime = DefaultRefreshTime
	}
	if config.Email.ValidityWindow <= 0 {
		config.Email.ValidityWindow = DefaultValidityWindow
	}
	if config.Email.MailBox == "" {
		config.Email.MailBox = DefaultMailbox
	}
	if config.Routes.Mode == "" {
		config.Routes.Mode = DefaultTravelMode
	}
	if len(config.AllowedSenders) == 0 {
		return nil, fmt.Errorf("config: at least one allowed sender is required")
	}

	return &config, nil
}
