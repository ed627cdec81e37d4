package config

import "fmt"

// Validate checks that required configuration values are present and sane.
// The API keys are mandatory: the service refuses to start without them so a
// misconfigured deployment cannot expose unauthenticated economy endpoints.
func Validate(cfg *Config) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if cfg.AdminAPIKey == "" {
		return fmt.Errorf("ADMIN_API_KEY environment variable must be set for security")
	}
	if cfg.AdminAPIKey == cfg.APIKey {
		return fmt.Errorf("ADMIN_API_KEY must differ from API_KEY")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be in range 1-65535, got %d", cfg.Port)
	}
	if cfg.DBName == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	return nil
}
