package theme

import (
	"os"

	"github.com/grovetools/selectkit/config"
)

// Nerd Font Icons (Private Constants)
const (
	nerdIconSuccess     = "󰄬" // md-check (U+F012C)
	nerdIconError       = "" // cod-error (U+EA87)
	nerdIconWarning     = "" // fa-warning (U+F071)
	nerdIconInfo        = "󰋼" // md-information (U+F02FC)
	nerdIconRunning     = "" // fa-refresh (U+F021)
	nerdIconCursor      = "󰁔" // md-arrow_right (U+F0054)
	nerdIconChecked     = "󰱒" // md-checkbox_outline (U+F0C52)
	nerdIconUnchecked   = "󰄱" // md-checkbox_blank_outline (U+F0131)
	nerdIconFilter      = "󱣬" // md-filter_check (U+F18EC)
	nerdIconSelectAll   = "󰒆" // md-select_all (U+F0486)
	nerdIconChevronDown = "" // fa-chevron_down (U+F078)
	nerdIconChevronUp   = "" // fa-chevron_up (U+F077)
)

// ASCII Fallback Icons (Private Constants)
const (
	asciiIconSuccess     = "✓"
	asciiIconError       = "✗"
	asciiIconWarning     = "⚠"
	asciiIconInfo        = "ℹ"
	asciiIconRunning     = "◐"
	asciiIconCursor      = ">"
	asciiIconChecked     = "[x]"
	asciiIconUnchecked   = "[ ]"
	asciiIconFilter      = "/"
	asciiIconSelectAll   = "[*]"
	asciiIconChevronDown = "v"
	asciiIconChevronUp   = "^"
)

// Public Icon Variables
var (
	IconSuccess     string
	IconError       string
	IconWarning     string
	IconInfo        string
	IconRunning     string
	IconCursor      string
	IconChecked     string
	IconUnchecked   string
	IconFilter      string
	IconSelectAll   string
	IconChevronDown string
	IconChevronUp   string
)

// init function determines which icon set to use
func init() {
	useASCII := false

	// 1. Check environment variable first
	if os.Getenv("SELECTKIT_ICONS") == "ascii" {
		useASCII = true
	} else {
		// 2. Check config file
		cfg, err := config.LoadDefault()
		if err == nil {
			var tuiCfg struct {
				Icons string `yaml:"icons"`
			}
			if err := cfg.UnmarshalExtension("tui", &tuiCfg); err == nil && tuiCfg.Icons == "ascii" {
				useASCII = true
			}
		}
	}

	if useASCII {
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconInfo = asciiIconInfo
		IconRunning = asciiIconRunning
		IconCursor = asciiIconCursor
		IconChecked = asciiIconChecked
		IconUnchecked = asciiIconUnchecked
		IconFilter = asciiIconFilter
		IconSelectAll = asciiIconSelectAll
		IconChevronDown = asciiIconChevronDown
		IconChevronUp = asciiIconChevronUp
	} else {
		IconSuccess = nerdIconSuccess
		IconError = nerdIconError
		IconWarning = nerdIconWarning
		IconInfo = nerdIconInfo
		IconRunning = nerdIconRunning
		IconCursor = nerdIconCursor
		IconChecked = nerdIconChecked
		IconUnchecked = nerdIconUnchecked
		IconFilter = nerdIconFilter
		IconSelectAll = nerdIconSelectAll
		IconChevronDown = nerdIconChevronDown
		IconChevronUp = nerdIconChevronUp
	}
}
