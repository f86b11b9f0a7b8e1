package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Parse Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryParse,
		Message:  "Unknown HTTP method",
		Detail:   "The method suffix in the declaration name is not a recognized HTTP verb or configured alias. Valid verbs are get, post, put, patch, delete, head, and options.",
		DocURL:   "https://routewind.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryParse,
		Message:  "Invalid declaration name",
		Detail:   "The file or directory name cannot be parsed as a route segment. Names must be literal segments, [param] segments, or [...param] catch-all segments.",
		DocURL:   "https://routewind.dev/docs/errors/E002",
	},

	// ============================================
	// Build Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryBuild,
		Message:  "Duplicate middleware declaration",
		Detail:   "A directory scope can carry at most one middleware declaration. Two files declare middleware for the same scope.",
		DocURL:   "https://routewind.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryBuild,
		Message:  "Duplicate route",
		Detail:   "Multiple route files resolve to the same URL pattern and method. Parameter names don't distinguish routes, so [id] and [userId] at the same position collide.",
		DocURL:   "https://routewind.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryBuild,
		Message:  "Path conflict",
		Detail:   "A catch-all segment closes its position for its method. No other route of the same method may occupy or pass through that position.",
		DocURL:   "https://routewind.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryBuild,
		Message:  "Ambiguous parameter name",
		Detail:   "The same parameter name appears more than once in a single route path, so extracted values would overwrite each other.",
		DocURL:   "https://routewind.dev/docs/errors/E104",
	},

	// ============================================
	// Configuration Errors (E200-E219)
	// ============================================

	"E200": {
		Category: CategoryConfig,
		Message:  "Invalid routewind.json",
		Detail:   "The routewind.json configuration file is malformed.",
		DocURL:   "https://routewind.dev/docs/errors/E200",
	},
	"E201": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range or has the wrong shape.",
		DocURL:   "https://routewind.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryConfig,
		Message:  "Routes directory not found",
		Detail:   "The configured routes directory does not exist.",
		DocURL:   "https://routewind.dev/docs/errors/E202",
	},

	// ============================================
	// CLI Errors (E220-E239)
	// ============================================

	"E220": {
		Category: CategoryCLI,
		Message:  "Not a routewind project",
		Detail:   "The current directory is not a routewind project. Run this command from a directory with routewind.json.",
		DocURL:   "https://routewind.dev/docs/errors/E220",
	},
	"E221": {
		Category: CategoryCLI,
		Message:  "Route build failed",
		Detail:   "The route table could not be built. Fix the reported declarations and retry.",
		DocURL:   "https://routewind.dev/docs/errors/E221",
	},
}

// kindCodes maps router diagnostic kinds to registered error codes.
var kindCodes = map[string]string{
	"UNKNOWN_METHOD":       "E001",
	"INVALID_FILE_NAME":    "E002",
	"DUPLICATE_MIDDLEWARE": "E101",
	"DUPLICATE_ROUTE":      "E102",
	"PATH_CONFLICT":        "E103",
	"AMBIGUOUS_PARAM_NAME": "E104",
}

// CodeForKind returns the error code for a router diagnostic kind, or ""
// if the kind has no registered code.
func CodeForKind(kind string) string {
	return kindCodes[kind]
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
