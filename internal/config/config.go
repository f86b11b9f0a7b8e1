package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/routewind-dev/routewind/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "routewind.json"

	// DefaultRoutesDir is the default routes directory.
	DefaultRoutesDir = "routes"

	// DefaultExtension is the default declaration file extension.
	DefaultExtension = ".go"

	// DefaultIndexName is the default directory-index stem.
	DefaultIndexName = "index"

	// DefaultMiddlewareMarker is the default middleware file stem.
	DefaultMiddlewareMarker = "_middleware"
)

// canonicalVerbs are the methods an alias may expand to.
var canonicalVerbs = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true,
	"DELETE": true, "HEAD": true, "OPTIONS": true,
}

// Config represents the complete routewind.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// RoutesDir is the directory scanned for route declarations.
	RoutesDir string `json:"root_directory,omitempty"`

	// Extension is the declaration file extension (including the dot).
	Extension string `json:"extension,omitempty"`

	// IndexName is the stem that maps to the directory's own path.
	IndexName string `json:"index_name,omitempty"`

	// MiddlewareMarker is the stem that declares scope middleware.
	MiddlewareMarker string `json:"middleware_marker,omitempty"`

	// MethodAliases maps extra method stems to canonical HTTP verbs,
	// e.g. {"del": "DELETE"}.
	MethodAliases map[string]string `json:"method_aliases,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version:          "0.1.0",
		RoutesDir:        DefaultRoutesDir,
		Extension:        DefaultExtension,
		IndexName:        DefaultIndexName,
		MiddlewareMarker: DefaultMiddlewareMarker,
	}
}

// Load reads configuration from the specified directory.
// It looks for routewind.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E220").
				WithDetail("No routewind.json found in " + filepath.Dir(path)).
				WithSuggestion("Create a routewind.json in your project root")
		}
		return nil, errors.New("E200").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E200").
			WithDetail("Failed to parse routewind.json: " + err.Error()).
			WithSuggestion("Check that routewind.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E200").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E200").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.RoutesDir == "" {
		c.RoutesDir = DefaultRoutesDir
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.IndexName == "" {
		c.IndexName = DefaultIndexName
	}
	if c.MiddlewareMarker == "" {
		c.MiddlewareMarker = DefaultMiddlewareMarker
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Extension, ".") {
		return errors.New("E201").
			WithDetail("extension must start with a dot, got " + strconvQuote(c.Extension)).
			WithSuggestion(`Use a value like ".go"`)
	}
	if strings.ContainsAny(c.IndexName, "./") || c.IndexName == "" {
		return errors.New("E201").
			WithDetail("index_name must be a bare stem, got " + strconvQuote(c.IndexName))
	}
	if strings.ContainsAny(c.MiddlewareMarker, "./") || c.MiddlewareMarker == "" {
		return errors.New("E201").
			WithDetail("middleware_marker must be a bare stem, got " + strconvQuote(c.MiddlewareMarker))
	}
	for alias, verb := range c.MethodAliases {
		if alias == "" || strings.ContainsAny(alias, "./") {
			return errors.New("E201").
				WithDetail("method alias " + strconvQuote(alias) + " must be a bare stem")
		}
		if !canonicalVerbs[strings.ToUpper(verb)] {
			return errors.New("E201").
				WithDetail("method alias " + strconvQuote(alias) + " maps to unknown verb " + strconvQuote(verb)).
				WithSuggestion("Aliases must map to GET, POST, PUT, PATCH, DELETE, HEAD, or OPTIONS")
		}
	}
	return nil
}

// RoutesPath returns the absolute path to the routes directory.
func (c *Config) RoutesPath() string {
	path := c.RoutesDir
	if path == "" {
		path = DefaultRoutesDir
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// EnsureRoutesDir verifies that the routes directory exists.
func (c *Config) EnsureRoutesDir() error {
	info, err := os.Stat(c.RoutesPath())
	if err != nil || !info.IsDir() {
		return errors.New("E202").
			WithDetail("Routes directory " + strconvQuote(c.RoutesPath()) + " does not exist").
			WithSuggestion("Create the directory or set root_directory in routewind.json")
	}
	return nil
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing routewind.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E220").
				WithDetail("No routewind.json found in " + startDir + " or any parent directory").
				WithSuggestion("Create a routewind.json in your project root")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

// strconvQuote quotes a string for error messages.
func strconvQuote(s string) string {
	return `"` + s + `"`
}
