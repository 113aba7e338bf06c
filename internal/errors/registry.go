package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (T100-T149)
	// ============================================

	"T100": {
		Category: CategoryConfig,
		Message:  "Config file not readable",
		Detail:   "The configuration file exists but could not be read.",
	},
	"T101": {
		Category: CategoryConfig,
		Message:  "Invalid config syntax",
		Detail:   "The configuration file could not be parsed. toastify.json must be valid JSON and toastify.yaml valid YAML.",
	},
	"T102": {
		Category: CategoryValidation,
		Message:  "Invalid toast position",
		Detail:   "Positions are top-left, top-right, top-center, bottom-left, bottom-right and bottom-center.",
	},
	"T103": {
		Category: CategoryValidation,
		Message:  "Invalid toast type",
		Detail:   "Types are default, info, success, warning and error.",
	},
	"T104": {
		Category: CategoryValidation,
		Message:  "Invalid theme",
		Detail:   "Themes are light, dark and colored.",
	},
	"T105": {
		Category: CategoryValidation,
		Message:  "Unknown transition",
		Detail:   "Built-in transitions are bounce, slide, zoom and flip.",
	},
	"T106": {
		Category: CategoryValidation,
		Message:  "Negative duration",
		Detail:   "autoClose and exitTimeout take milliseconds; 0 disables them.",
	},
	"T107": {
		Category: CategoryValidation,
		Message:  "Invalid limit",
		Detail:   "limit is the maximum number of visible toasts; 0 means unlimited.",
	},
	"T108": {
		Category: CategoryValidation,
		Message:  "Invalid draggable percent",
		Detail:   "draggablePercent is a percentage of the toast width between 1 and 100.",
	},
	"T109": {
		Category: CategoryValidation,
		Message:  "Invalid drag direction",
		Detail:   "draggableDirection is x or y.",
	},

	// ============================================
	// Server Errors (T150-T199)
	// ============================================

	"T150": {
		Category: CategoryServer,
		Message:  "Invalid server port",
		Detail:   "The port must be between 1 and 65535.",
	},
	"T151": {
		Category: CategoryServer,
		Message:  "Invalid log level",
		Detail:   "Log levels are debug, info, warn and error.",
	},
	"T152": {
		Category: CategoryServer,
		Message:  "Invalid metrics path",
		Detail:   "The metrics path must start with / or be - to disable the endpoint.",
	},
	"T153": {
		Category: CategoryServer,
		Message:  "Server failed",
		Detail:   "The HTTP server stopped with an error.",
	},

	// ============================================
	// CLI Errors (T200-T249)
	// ============================================

	"T200": {
		Category: CategoryCLI,
		Message:  "Render failed",
		Detail:   "The container could not be rendered to HTML.",
	},
	"T201": {
		Category: CategoryCLI,
		Message:  "Invalid flag value",
		Detail:   "A command line flag has a value that cannot be used.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered codes in order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
