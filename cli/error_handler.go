package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/selectkit/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Create a selectkit.yml in your project or config directory.\n")
		return err

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(os.Stderr, "❌ Configuration could not be parsed: %v\n", err)
		if widgetErr, ok := err.(*errors.WidgetError); ok {
			if path, ok := widgetErr.Details["path"]; ok {
				fmt.Fprintf(os.Stderr, "Check the syntax of %v\n", path)
			}
		}
		return err

	case errors.ErrCodeDataFetch:
		if widgetErr, ok := err.(*errors.WidgetError); ok {
			fmt.Fprintf(os.Stderr, "❌ Failed to load items for widget '%v': %v\n",
				widgetErr.Details["widget"], widgetErr.Cause)
		} else {
			fmt.Fprintf(os.Stderr, "❌ Failed to load items: %v\n", err)
		}
		return err

	case errors.ErrCodeMissingRoot:
		fmt.Fprintf(os.Stderr, "❌ Widget constructed without a root surface. Pass Root in widget.Options.\n")
		return err

	case errors.ErrCodeDataConflict:
		fmt.Fprintf(os.Stderr, "❌ Widget constructed with both Items and Source. Pass exactly one.\n")
		return err

	default:
		// Generic error handling
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if widgetErr, ok := err.(*errors.WidgetError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", widgetErr.ToJSON())
			}
		}
		return err
	}
}
