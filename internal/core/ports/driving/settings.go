package driving

import "github.com/custodia-labs/quickswitch/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, defaults filled in.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by config key, parsing value for its type.
	Set(key, value string) error

	// Keys returns every supported config key in display order.
	Keys() []string

	// Value returns the effective value of a config key as text.
	Value(key string) (string, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
