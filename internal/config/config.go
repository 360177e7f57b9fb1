package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/rail44/calc/internal/log"
)

// FileName is the config file searched for from the working directory upward.
const FileName = "calc.toml"

// Config represents the complete configuration for calc
type Config struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	Plain    bool   `toml:"plain"`
	Theme    Theme  `toml:"theme"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-"`
}

// Theme holds lipgloss colours: ANSI indices ("12") or hex ("#ff8800").
type Theme struct {
	Display   string `toml:"display"`
	Indicator string `toml:"indicator"`
	Digit     string `toml:"digit"`
	Operator  string `toml:"operator"`
	Function  string `toml:"function"`
	Highlight string `toml:"highlight"`
	Error     string `toml:"error"`
	Border    string `toml:"border"`
}

// DefaultTheme is used for every colour the config file leaves out.
func DefaultTheme() Theme {
	return Theme{
		Display:   "15",
		Indicator: "241",
		Digit:     "237",
		Operator:  "12",
		Function:  "240",
		Highlight: "11",
		Error:     "9",
		Border:    "62",
	}
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		LogLevel: string(log.LevelInfo),
		Theme:    DefaultTheme(),
	}
}

// Load reads the configuration. An explicit path must exist; otherwise
// calc.toml is searched from startDir upward, then ~/.calc.toml. When no
// file is found the defaults are returned.
func Load(fs afero.Fs, explicitPath, startDir string) (*Config, error) {
	configPath := explicitPath
	if configPath == "" {
		found, err := findConfigFile(fs, startDir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return Default(), nil
		}
		configPath = found
	}

	configData, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from the defaults so that missing keys keep them
	cfg := Default()
	md, err := toml.Decode(string(configData), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	for _, key := range md.Undecoded() {
		log.Warn("unknown config key", "key", key.String(), "path", configPath)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.Path = configPath
	if cfg.LogFile != "" {
		cfg.LogFile = normalizePath(expandEnvVars(cfg.LogFile), filepath.Dir(configPath))
	}

	return cfg, nil
}

// findConfigFile searches for calc.toml starting from startDir, falling back
// to ~/.calc.toml. It returns "" when neither exists.
func findConfigFile(fs afero.Fs, startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	absPath, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, FileName)
		if ok, _ := afero.Exists(fs, configPath); ok {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	if home, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(home, "."+FileName)
		if ok, _ := afero.Exists(fs, configPath); ok {
			return configPath, nil
		}
	}

	return "", nil
}

var (
	envPattern    = regexp.MustCompile(`\$\{([^}]+)\}`)
	hexColour     = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	ansiColourMax = 255
)

// expandEnvVars expands ${VAR_NAME} environment variables in the string
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if value := os.Getenv(varName); value != "" {
			return value
		}
		// Keep original if not set
		return match
	})
}

// validate checks the log level and every theme colour
func (c *Config) validate() error {
	var errors []string

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("log_level %q is not one of error, warn, info, debug", c.LogLevel))
	}

	for _, field := range c.Theme.fields() {
		if !validColour(field.value) {
			errors = append(errors, fmt.Sprintf("theme.%s %q is not an ANSI colour index or #rrggbb", field.name, field.value))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, ", "))
	}

	return nil
}

type themeField struct {
	name  string
	value string
}

func (t Theme) fields() []themeField {
	return []themeField{
		{"display", t.Display},
		{"indicator", t.Indicator},
		{"digit", t.Digit},
		{"operator", t.Operator},
		{"function", t.Function},
		{"highlight", t.Highlight},
		{"error", t.Error},
		{"border", t.Border},
	}
}

func validColour(s string) bool {
	if hexColour.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= ansiColourMax
}

// normalizePath converts relative paths to absolute paths based on config file location
func normalizePath(path, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(configDir, path)
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() log.LogLevel {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelInfo
	}
	return level
}
