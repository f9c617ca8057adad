package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultScope    = "search.default_scope"
	keyLookbackDays    = "history.lookback_days"
	keyHistoryMax      = "history.max_results"
	keyHistoryLimit    = "history.limit"
	keyBookmarkLimit   = "bookmarks.limit"
	keyCommonDomains   = "suggestions.common_domains"
	keyTabsSnapshot    = "sources.tabs_snapshot"
	keyHistoryBackend  = "sources.history"
	keyFirefoxProfile  = "sources.firefox_profile"
	keyOpenCommand     = "browser.open_command"
	keyWindowCommand   = "browser.window_command"
	keyActivateCommand = "browser.activate_command"
)

// settingKeys lists every supported key in display order.
var settingKeys = []string{
	keyDefaultScope,
	keyLookbackDays,
	keyHistoryMax,
	keyHistoryLimit,
	keyBookmarkLimit,
	keyCommonDomains,
	keyTabsSnapshot,
	keyHistoryBackend,
	keyFirefoxProfile,
	keyOpenCommand,
	keyWindowCommand,
	keyActivateCommand,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, fmt.Errorf("config store: %w", domain.ErrNotConfigured)
	}

	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Search: domain.SearchSettings{
			DefaultScope: s.getScope(defaults.Search.DefaultScope),
		},
		History: domain.HistorySettings{
			LookbackDays: s.getInt(keyLookbackDays, defaults.History.LookbackDays),
			MaxResults:   s.getInt(keyHistoryMax, defaults.History.MaxResults),
			Limit:        s.getInt(keyHistoryLimit, defaults.History.Limit),
		},
		Bookmarks: domain.BookmarkSettings{
			Limit: s.getInt(keyBookmarkLimit, defaults.Bookmarks.Limit),
		},
		Suggestions: domain.SuggestionSettings{
			CommonDomains: s.getStringSlice(keyCommonDomains, defaults.Suggestions.CommonDomains),
		},
		Sources: domain.SourceSettings{
			TabsSnapshot:   s.configStore.GetString(keyTabsSnapshot),
			History:        s.getBackend(defaults.Sources.History),
			FirefoxProfile: s.configStore.GetString(keyFirefoxProfile),
		},
		Browser: domain.BrowserSettings{
			OpenCommand:     s.configStore.GetString(keyOpenCommand),
			WindowCommand:   s.configStore.GetString(keyWindowCommand),
			ActivateCommand: s.configStore.GetString(keyActivateCommand),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("settings: %w", domain.ErrInvalidInput)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyDefaultScope, settings.Search.DefaultScope.String()},
		{keyLookbackDays, settings.History.LookbackDays},
		{keyHistoryMax, settings.History.MaxResults},
		{keyHistoryLimit, settings.History.Limit},
		{keyBookmarkLimit, settings.Bookmarks.Limit},
		{keyCommonDomains, settings.Suggestions.CommonDomains},
		{keyTabsSnapshot, settings.Sources.TabsSnapshot},
		{keyHistoryBackend, settings.Sources.History.String()},
		{keyFirefoxProfile, settings.Sources.FirefoxProfile},
		{keyOpenCommand, settings.Browser.OpenCommand},
		{keyWindowCommand, settings.Browser.WindowCommand},
		{keyActivateCommand, settings.Browser.ActivateCommand},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting, validating value for the key's type.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var typed any
	switch key {
	case keyDefaultScope:
		scope, err := domain.ParseFilterScope(value)
		if err != nil {
			return err
		}
		typed = scope.String()
	case keyHistoryBackend:
		backend := domain.HistoryBackend(strings.ToLower(value))
		if !backend.IsValid() {
			return fmt.Errorf("%w: %q", domain.ErrUnsupportedSource, value)
		}
		typed = backend.String()
	case keyLookbackDays, keyHistoryMax, keyHistoryLimit, keyBookmarkLimit:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		typed = n
	case keyCommonDomains:
		typed = splitList(value)
	case keyTabsSnapshot, keyFirefoxProfile, keyOpenCommand, keyWindowCommand, keyActivateCommand:
		typed = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns every supported config key in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Value returns the effective value of key as text.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case keyDefaultScope:
		return settings.Search.DefaultScope.String(), nil
	case keyLookbackDays:
		return strconv.Itoa(settings.History.LookbackDays), nil
	case keyHistoryMax:
		return strconv.Itoa(settings.History.MaxResults), nil
	case keyHistoryLimit:
		return strconv.Itoa(settings.History.Limit), nil
	case keyBookmarkLimit:
		return strconv.Itoa(settings.Bookmarks.Limit), nil
	case keyCommonDomains:
		return strings.Join(settings.Suggestions.CommonDomains, ","), nil
	case keyTabsSnapshot:
		return settings.Sources.TabsSnapshot, nil
	case keyHistoryBackend:
		return settings.Sources.History.String(), nil
	case keyFirefoxProfile:
		return settings.Sources.FirefoxProfile, nil
	case keyOpenCommand:
		return settings.Browser.OpenCommand, nil
	case keyWindowCommand:
		return settings.Browser.WindowCommand, nil
	case keyActivateCommand:
		return settings.Browser.ActivateCommand, nil
	default:
		return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// getScope retrieves the default scope with fallback.
func (s *SettingsService) getScope(defaultVal domain.FilterScope) domain.FilterScope {
	scope := domain.FilterScope(s.configStore.GetString(keyDefaultScope))
	if !scope.IsValid() {
		return defaultVal
	}
	return scope
}

// getBackend retrieves the history backend with fallback.
func (s *SettingsService) getBackend(defaultVal domain.HistoryBackend) domain.HistoryBackend {
	backend := domain.HistoryBackend(s.configStore.GetString(keyHistoryBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

// getInt retrieves a positive int config value with a default.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if n := s.configStore.GetInt(key); n > 0 {
		return n
	}
	return defaultVal
}

// getStringSlice retrieves a non-empty list config value with a default.
func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if list := s.configStore.GetStringSlice(key); len(list) > 0 {
		return list
	}
	return defaultVal
}

// splitList parses a comma-separated list, dropping empty items.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
