// Package config loads selectkit configuration from selectkit.yml (or
// .toml), searching upward from the working directory and falling back
// to the XDG config directory. Extension sections let embedding
// applications carry their own configuration in the same file.
package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the root of a selectkit configuration file.
type Config struct {
	// Widgets holds the per-variant behavior defaults.
	Widgets WidgetsConfig `yaml:"widgets" toml:"widgets"`

	// Extensions captures every unknown top-level section so embedding
	// applications can store their own configuration alongside ours.
	Extensions map[string]interface{} `yaml:",inline" toml:"-"`
}

// WidgetsConfig groups widget defaults by variant. Defaults applies to
// every variant; the variant sections override it field by field.
type WidgetsConfig struct {
	Defaults    WidgetDefaults `yaml:"defaults" toml:"defaults"`
	Dropdown    WidgetDefaults `yaml:"dropdown" toml:"dropdown"`
	Combobox    WidgetDefaults `yaml:"combobox" toml:"combobox"`
	Multiselect WidgetDefaults `yaml:"multiselect" toml:"multiselect"`
}

// WidgetDefaults are the tunable widget knobs. Zero values mean
// "unset" and fall through to the built-in behavior.
type WidgetDefaults struct {
	// Placeholder is shown while nothing is selected.
	Placeholder string `yaml:"placeholder" toml:"placeholder"`

	// FilterStrategy is one of contains, startswith, fuzzy, none.
	FilterStrategy string `yaml:"filter_strategy" toml:"filter_strategy"`

	// MinFilterLength is the text length below which filtering stays
	// inactive.
	MinFilterLength int `yaml:"min_filter_length" toml:"min_filter_length"`

	// DebounceMs throttles live filter input, in milliseconds.
	DebounceMs int `yaml:"debounce_ms" toml:"debounce_ms"`

	// MaxSelectedItems caps interactive multi-select toggling.
	MaxSelectedItems int `yaml:"max_selected_items" toml:"max_selected_items"`

	// PreferredSide is the popover's preferred placement, "bottom" or
	// "top".
	PreferredSide string `yaml:"preferred_side" toml:"preferred_side"`

	// Offset is the gap between the anchor and the popover, in cells.
	Offset int `yaml:"offset" toml:"offset"`
}

// merge overlays o onto d field by field, zero values losing.
func (d WidgetDefaults) merge(o WidgetDefaults) WidgetDefaults {
	if o.Placeholder != "" {
		d.Placeholder = o.Placeholder
	}
	if o.FilterStrategy != "" {
		d.FilterStrategy = o.FilterStrategy
	}
	if o.MinFilterLength != 0 {
		d.MinFilterLength = o.MinFilterLength
	}
	if o.DebounceMs != 0 {
		d.DebounceMs = o.DebounceMs
	}
	if o.MaxSelectedItems != 0 {
		d.MaxSelectedItems = o.MaxSelectedItems
	}
	if o.PreferredSide != "" {
		d.PreferredSide = o.PreferredSide
	}
	if o.Offset != 0 {
		d.Offset = o.Offset
	}
	return d
}

// For resolves the effective defaults for a widget variant, overlaying
// the variant section onto the shared defaults.
func (c *Config) For(variant string) WidgetDefaults {
	base := c.Widgets.Defaults
	switch variant {
	case "dropdown":
		return base.merge(c.Widgets.Dropdown)
	case "combobox":
		return base.merge(c.Widgets.Combobox)
	case "multiselect":
		return base.merge(c.Widgets.Multiselect)
	default:
		return base
	}
}

// UnmarshalExtension decodes a specific extension's configuration from
// the loaded selectkit.yml into the provided target struct. The target
// must be a pointer. This provides a type-safe way for embedding
// applications to access their custom configuration sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
