package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/toastify/internal/errors"
	"github.com/vango-dev/toastify/pkg/toast"
	"github.com/vango-dev/toastify/pkg/vdom"
)

const (
	// JSONFileName is the JSON configuration file name.
	JSONFileName = "toastify.json"

	// YAMLFileName is the YAML configuration file name.
	YAMLFileName = "toastify.yaml"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultMetricsPath is where metrics are served by default.
	DefaultMetricsPath = "/metrics"

	// DefaultExitTimeoutMs is the default exit timeout in milliseconds.
	DefaultExitTimeoutMs = 1000
)

// Config represents the complete configuration file.
type Config struct {
	// Server contains HTTP server settings.
	Server ServerConfig `json:"server" yaml:"server"`

	// Container contains container and toast defaults.
	Container ContainerConfig `json:"container" yaml:"container"`

	// configPath stores the path where the config was loaded from.
	configPath string

	// root is the parsed YAML document, kept for error locations.
	root *yaml.Node
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	// MetricsPath is where metrics are served; "-" disables the endpoint.
	MetricsPath string `json:"metricsPath,omitempty" yaml:"metricsPath,omitempty"`

	// Title is the page title of the demo page.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// ContainerConfig contains container-level settings.
type ContainerConfig struct {
	ContainerID string            `json:"containerId,omitempty" yaml:"containerId,omitempty"`
	ClassName   string            `json:"className,omitempty" yaml:"className,omitempty"`
	Style       map[string]string `json:"style,omitempty" yaml:"style,omitempty"`
	RTL         bool              `json:"rtl,omitempty" yaml:"rtl,omitempty"`
	Limit       int               `json:"limit,omitempty" yaml:"limit,omitempty"`
	NewestOnTop bool              `json:"newestOnTop,omitempty" yaml:"newestOnTop,omitempty"`

	// ExitTimeoutMs bounds how long a dismissed toast waits for the client
	// to report the end of its exit animation. Nil uses the default, 0
	// waits forever.
	ExitTimeoutMs *int64 `json:"exitTimeoutMs,omitempty" yaml:"exitTimeoutMs,omitempty"`

	// Defaults apply to every toast shown in the container.
	Defaults ToastDefaults `json:"defaults" yaml:"defaults"`
}

// ToastDefaults are the per-toast defaults. Pointer fields distinguish
// "unset" from an explicit false or zero.
type ToastDefaults struct {
	Position           string `json:"position,omitempty" yaml:"position,omitempty"`
	Theme              string `json:"theme,omitempty" yaml:"theme,omitempty"`
	Transition         string `json:"transition,omitempty" yaml:"transition,omitempty"`
	AutoCloseMs        *int64 `json:"autoCloseMs,omitempty" yaml:"autoCloseMs,omitempty"`
	HideProgressBar    bool   `json:"hideProgressBar,omitempty" yaml:"hideProgressBar,omitempty"`
	CloseButton        *bool  `json:"closeButton,omitempty" yaml:"closeButton,omitempty"`
	PauseOnHover       *bool  `json:"pauseOnHover,omitempty" yaml:"pauseOnHover,omitempty"`
	PauseOnFocusLoss   *bool  `json:"pauseOnFocusLoss,omitempty" yaml:"pauseOnFocusLoss,omitempty"`
	CloseOnClick       *bool  `json:"closeOnClick,omitempty" yaml:"closeOnClick,omitempty"`
	Draggable          *bool  `json:"draggable,omitempty" yaml:"draggable,omitempty"`
	DraggablePercent   int    `json:"draggablePercent,omitempty" yaml:"draggablePercent,omitempty"`
	DraggableDirection string `json:"draggableDirection,omitempty" yaml:"draggableDirection,omitempty"`
	Role               string `json:"role,omitempty" yaml:"role,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration from dir. It looks for toastify.json, then
// toastify.yaml and toastify.yml. A directory without a config file yields
// the defaults.
func Load(dir string) (*Config, error) {
	for _, name := range []string{JSONFileName, YAMLFileName, "toastify.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	slog.Debug("no config file found, using defaults", "dir", dir)
	return New(), nil
}

// LoadFile reads the configuration from path. The format follows the file
// extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("T100").
				WithDetail("No config file at " + path).
				WithSuggestion("Create " + JSONFileName + " or " + YAMLFileName + ", or drop the --config flag to use defaults").
				Wrap(err)
		}
		return nil, errors.New("T100").Wrap(err)
	}

	slog.Debug("loading config file", "path", path)

	cfg := &Config{configPath: path}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = cfg.decodeYAML(data)
	default:
		err = cfg.decodeJSON(data)
	}
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeJSON(data []byte) error {
	if err := json.Unmarshal(data, c); err != nil {
		line := 0
		var syntaxErr *json.SyntaxError
		if stderrors.As(err, &syntaxErr) {
			line = bytes.Count(data[:min(int(syntaxErr.Offset), len(data))], []byte("\n")) + 1
		}
		te := errors.New("T101").
			WithSuggestion("Check that " + filepath.Base(c.configPath) + " is valid JSON").
			Wrap(err)
		if line > 0 {
			te = te.WithLocation(c.configPath, line, 0)
		}
		return te
	}
	return nil
}

func (c *Config) decodeYAML(data []byte) error {
	expanded := os.ExpandEnv(string(data))

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(expanded), &root); err != nil {
		return errors.New("T101").
			WithLocationFromError(c.configPath, err).
			WithSuggestion("Check the indentation and quoting of " + filepath.Base(c.configPath)).
			Wrap(err)
	}
	if root.Kind == 0 {
		// Empty document.
		return nil
	}
	if err := root.Decode(c); err != nil {
		return errors.New("T101").
			WithLocationFromError(c.configPath, err).
			Wrap(err)
	}
	c.root = &root
	return nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = DefaultLogLevel
	}
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = DefaultMetricsPath
	}
	if c.Server.Title == "" {
		c.Server.Title = "Toastify"
	}
	if c.Container.ExitTimeoutMs == nil {
		ms := int64(DefaultExitTimeoutMs)
		c.Container.ExitTimeoutMs = &ms
	}

	d := &c.Container.Defaults
	if d.Position == "" {
		d.Position = string(toast.TopRight)
	}
	if d.Theme == "" {
		d.Theme = string(toast.ThemeLight)
	}
	if d.Transition == "" {
		d.Transition = toast.Bounce.Name
	}
	if d.AutoCloseMs == nil {
		ms := toast.DefaultAutoClose.Milliseconds()
		d.AutoCloseMs = &ms
	}
	if d.DraggablePercent == 0 {
		d.DraggablePercent = toast.DefaultDraggablePercent
	}
	if d.DraggableDirection == "" {
		d.DraggableDirection = string(toast.DirectionX)
	}
	if d.Role == "" {
		d.Role = toast.DefaultRole
	}
	for _, b := range []**bool{&d.CloseButton, &d.PauseOnHover, &d.PauseOnFocusLoss, &d.CloseOnClick, &d.Draggable} {
		if *b == nil {
			t := true
			*b = &t
		}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	s := c.Server
	if s.Port < 1 || s.Port > 65535 {
		return c.invalid("T150", fmt.Sprintf("port %d is out of range", s.Port), "server", "port")
	}
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		return c.invalid("T151", err.Error(), "server", "logLevel")
	}
	if s.MetricsPath != "-" && !strings.HasPrefix(s.MetricsPath, "/") {
		return c.invalid("T152", fmt.Sprintf("metrics path %q", s.MetricsPath), "server", "metricsPath")
	}

	ct := c.Container
	if ct.Limit < 0 {
		return c.invalid("T107", fmt.Sprintf("limit %d is negative", ct.Limit), "container", "limit")
	}
	if ct.ExitTimeoutMs != nil && *ct.ExitTimeoutMs < 0 {
		return c.invalid("T106", fmt.Sprintf("exitTimeoutMs %d is negative", *ct.ExitTimeoutMs), "container", "exitTimeoutMs")
	}

	d := ct.Defaults
	if _, err := toast.ParsePosition(d.Position); err != nil {
		return c.invalid("T102", err.Error(), "container", "defaults", "position").
			WithSuggestion("Use one of " + positionList())
	}
	if _, err := toast.ParseTheme(d.Theme); err != nil {
		return c.invalid("T104", err.Error(), "container", "defaults", "theme")
	}
	if _, ok := toast.TransitionByName(d.Transition); !ok {
		return c.invalid("T105", fmt.Sprintf("transition %q", d.Transition), "container", "defaults", "transition")
	}
	if d.AutoCloseMs != nil && *d.AutoCloseMs < 0 {
		return c.invalid("T106", fmt.Sprintf("autoCloseMs %d is negative", *d.AutoCloseMs), "container", "defaults", "autoCloseMs")
	}
	if d.DraggablePercent < 1 || d.DraggablePercent > 100 {
		return c.invalid("T108", fmt.Sprintf("draggablePercent %d", d.DraggablePercent), "container", "defaults", "draggablePercent")
	}
	if d.DraggableDirection != string(toast.DirectionX) && d.DraggableDirection != string(toast.DirectionY) {
		return c.invalid("T109", fmt.Sprintf("draggableDirection %q", d.DraggableDirection), "container", "defaults", "draggableDirection")
	}
	return nil
}

// invalid builds a validation error located at the YAML key path, when
// the config came from a YAML file.
func (c *Config) invalid(code, cause string, path ...string) *errors.ToastError {
	err := errors.New(code).Wrap(fmt.Errorf("%s: %s", strings.Join(path, "."), cause))
	if node := lookup(c.root, path...); node != nil {
		err = err.WithLocation(c.configPath, node.Line, node.Column)
	}
	return err
}

// lookup walks a YAML mapping by keys and returns the value node.
func lookup(node *yaml.Node, path ...string) *yaml.Node {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	for _, key := range path {
		if node.Kind != yaml.MappingNode {
			return nil
		}
		var next *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				next = node.Content[i+1]
				break
			}
		}
		if next == nil {
			return nil
		}
		node = next
	}
	return node
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ExitTimeout returns the configured exit timeout.
func (c *Config) ExitTimeout() time.Duration {
	if c.Container.ExitTimeoutMs == nil {
		return DefaultExitTimeoutMs * time.Millisecond
	}
	return time.Duration(*c.Container.ExitTimeoutMs) * time.Millisecond
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() slog.Level {
	level, err := ParseLogLevel(c.Server.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ToastOptions converts the container section into toast.Options. Call it
// on a validated config.
func (c *Config) ToastOptions() toast.Options {
	opts := toast.DefaultOptions()
	ct := c.Container
	d := ct.Defaults

	opts.ContainerID = ct.ContainerID
	if ct.ClassName != "" {
		opts.ClassName = toast.StaticClass(ct.ClassName)
	}
	if len(ct.Style) > 0 {
		opts.Style = vdom.Style(ct.Style).Clone()
	}
	opts.RTL = ct.RTL
	opts.Limit = ct.Limit
	opts.NewestOnTop = ct.NewestOnTop

	if pos, err := toast.ParsePosition(d.Position); err == nil {
		opts.Position = pos
	}
	if theme, err := toast.ParseTheme(d.Theme); err == nil {
		opts.Theme = theme
	}
	if tr, ok := toast.TransitionByName(d.Transition); ok {
		opts.Transition = tr
	}
	if d.AutoCloseMs != nil {
		opts.AutoClose = time.Duration(*d.AutoCloseMs) * time.Millisecond
	}
	opts.HideProgressBar = d.HideProgressBar
	if d.CloseButton != nil && !*d.CloseButton {
		opts.CloseButton = nil
	}
	opts.PauseOnHover = boolOr(d.PauseOnHover, true)
	opts.PauseOnFocusLoss = boolOr(d.PauseOnFocusLoss, true)
	opts.CloseOnClick = boolOr(d.CloseOnClick, true)
	opts.Draggable = boolOr(d.Draggable, true)
	opts.DraggablePercent = d.DraggablePercent
	opts.DraggableDirection = toast.Direction(d.DraggableDirection)
	opts.Role = d.Role
	return opts
}

// ParseLogLevel parses debug, info, warn or error.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func positionList() string {
	names := make([]string, len(toast.Positions))
	for i, p := range toast.Positions {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
