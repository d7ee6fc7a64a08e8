package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EditorConfig carries the defaults a fresh editing session starts
// from. It lives in editor.yml and can be changed without a restart.
type EditorConfig struct {
	DefaultCurrencyCode string  `mapstructure:"defaultCurrencyCode"`
	DefaultTaxRate      float64 `mapstructure:"defaultTaxRate"`
	DueInDays           int     `mapstructure:"dueInDays"`
	NumberTemplate      string  `mapstructure:"numberTemplate"`
	ItemPlaceholder     string  `mapstructure:"itemPlaceholder"`
}

func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		DefaultCurrencyCode: "USD",
		DefaultTaxRate:      0,
		DueInDays:           14,
		NumberTemplate:      "INV-{YYYY}-{SEQ3}",
		ItemPlaceholder:     "New Service Item",
	}
}

// EditorConfigHolder exposes the current editor defaults and swaps
// them atomically when the config file changes on disk.
type EditorConfigHolder struct {
	current atomic.Value // holds EditorConfig
}

func NewEditorConfigHolder() (*EditorConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("editor")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/invoicedesk")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INVOICEDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultEditorConfig()
	v.SetDefault("editor.defaultCurrencyCode", defaults.DefaultCurrencyCode)
	v.SetDefault("editor.defaultTaxRate", defaults.DefaultTaxRate)
	v.SetDefault("editor.dueInDays", defaults.DueInDays)
	v.SetDefault("editor.numberTemplate", defaults.NumberTemplate)
	v.SetDefault("editor.itemPlaceholder", defaults.ItemPlaceholder)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg EditorConfig
	if err := v.UnmarshalKey("editor", &cfg); err != nil {
		return nil, err
	}
	if err := validateEditorConfig(cfg); err != nil {
		return nil, err
	}

	holder := &EditorConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated EditorConfig
		if err := v.UnmarshalKey("editor", &updated); err != nil {
			log.Printf("[editor-config] reload failed: %v", err)
			return
		}
		if err := validateEditorConfig(updated); err != nil {
			log.Printf("[editor-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[editor-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *EditorConfigHolder) Get() EditorConfig {
	return h.current.Load().(EditorConfig)
}

func validateEditorConfig(cfg EditorConfig) error {
	if cfg.DefaultTaxRate < 0 {
		return errors.New("editor.defaultTaxRate cannot be negative")
	}
	if cfg.DueInDays < 0 {
		return errors.New("editor.dueInDays cannot be negative")
	}
	if cfg.NumberTemplate == "" {
		return errors.New("editor.numberTemplate cannot be empty")
	}
	return nil
}
