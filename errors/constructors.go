package errors

import "fmt"

// MissingRoot creates a construction fault for a widget built without
// its root input surface.
func MissingRoot(widget string) *WidgetError {
	return New(ErrCodeMissingRoot, fmt.Sprintf("%s requires a root surface", widget)).
		WithDetail("widget", widget)
}

// DataConflict creates a construction fault for a widget given both a
// static item collection and a data source.
func DataConflict(widget string) *WidgetError {
	return New(ErrCodeDataConflict,
		fmt.Sprintf("%s accepts either items or a data source, not both", widget)).
		WithDetail("widget", widget)
}

// DataFetch wraps a data source failure.
func DataFetch(err error) *WidgetError {
	return Wrap(err, ErrCodeDataFetch, "data source fetch failed")
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *WidgetError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *WidgetError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
