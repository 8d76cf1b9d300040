// Package config handles rhymer configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents rhymer configuration.
type Config struct {
	API    APIConfig    `toml:"api"`
	UI     UIConfig     `toml:"ui"`
	Export ExportConfig `toml:"export"`
	Keys   KeysConfig   `toml:"keys"`
}

// APIConfig contains settings for the word service.
type APIConfig struct {
	// Words endpoint of a Datamuse-compatible service
	BaseURL string `toml:"base_url"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Show the relevance score next to each word
	ShowScores bool `toml:"show_scores"`

	// Show part-of-speech tags next to each word
	ShowTags bool `toml:"show_tags"`

	// Placeholder text for the word input
	Placeholder string `toml:"placeholder"`

	// Color theme: auto, dark, light
	Theme string `toml:"theme"`
}

// ExportConfig contains settings for exporting saved words.
type ExportConfig struct {
	// File the saved list is written to. A leading ~ expands to $HOME.
	Path string `toml:"path"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Up       string `toml:"up"`
	Down     string `toml:"down"`
	Home     string `toml:"home"`
	End      string `toml:"end"`
	Rhymes   string `toml:"rhymes"`
	Synonyms string `toml:"synonyms"`
	Save     string `toml:"save"`
	Focus    string `toml:"focus"`
	Filter   string `toml:"filter"`
	Export   string `toml:"export"`
	Help     string `toml:"help"`
	Quit     string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "https://api.datamuse.com/words",
		},
		UI: UIConfig{
			ShowScores:  false,
			ShowTags:    false,
			Placeholder: "type a word...",
			Theme:       "auto",
		},
		Export: ExportConfig{
			Path: "~/rhymer-saved.txt",
		},
		Keys: KeysConfig{
			Up:       "up,k",
			Down:     "down,j",
			Home:     "home,g",
			End:      "end,G",
			Rhymes:   "ctrl+r",
			Synonyms: "ctrl+t",
			Save:     "enter,s",
			Focus:    "tab",
			Filter:   "/",
			Export:   "e",
			Help:     "?",
			Quit:     "q",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/rhymer/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "rhymer", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "rhymer", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "rhymer", "config.toml")
	}
	return filepath.Join(configDir, "rhymer", "config.toml")
}

// ExportPath returns the export path with a leading ~ expanded.
func (c *Config) ExportPath() string {
	return expandHome(c.Export.Path)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for everything else.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to path.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// CreateDefaultConfigFile writes a commented default config file to path.
// It refuses to overwrite an existing file.
func CreateDefaultConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# rhymer configuration\n\n")

	b.WriteString("[api]\n")
	b.WriteString("# Words endpoint of a Datamuse-compatible service\n")
	fmt.Fprintf(&b, "base_url = %q\n\n", cfg.API.BaseURL)

	b.WriteString("[ui]\n")
	b.WriteString("# Show relevance scores next to words\n")
	fmt.Fprintf(&b, "show_scores = %v\n", cfg.UI.ShowScores)
	b.WriteString("# Show part-of-speech tags next to words\n")
	fmt.Fprintf(&b, "show_tags = %v\n", cfg.UI.ShowTags)
	b.WriteString("# Placeholder for the word input\n")
	fmt.Fprintf(&b, "placeholder = %q\n", cfg.UI.Placeholder)
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n\n", cfg.UI.Theme)

	b.WriteString("[export]\n")
	b.WriteString("# Where 'export' writes the saved words (one per line)\n")
	fmt.Fprintf(&b, "path = %q\n\n", cfg.Export.Path)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# rhymes = %q\n", cfg.Keys.Rhymes)
	fmt.Fprintf(&b, "# synonyms = %q\n", cfg.Keys.Synonyms)
	fmt.Fprintf(&b, "# save = %q\n", cfg.Keys.Save)
	fmt.Fprintf(&b, "# focus = %q\n", cfg.Keys.Focus)
	fmt.Fprintf(&b, "# up = %q\n", cfg.Keys.Up)
	fmt.Fprintf(&b, "# down = %q\n", cfg.Keys.Down)
	fmt.Fprintf(&b, "# filter = %q\n", cfg.Keys.Filter)
	fmt.Fprintf(&b, "# export = %q\n", cfg.Keys.Export)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Invalid api.base_url: %v", err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			warnings = append(warnings, fmt.Sprintf("Invalid scheme for api.base_url: %q (expected http or https)", u.Scheme))
		} else if u.RawQuery != "" {
			warnings = append(warnings, "api.base_url should not contain a query string")
		}
	}

	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	// The rhymes and synonyms keys fire while typing, so plain runes would
	// be swallowed by the input.
	for name, keys := range map[string]string{"rhymes": c.Keys.Rhymes, "synonyms": c.Keys.Synonyms} {
		for _, k := range strings.Split(keys, ",") {
			k = strings.TrimSpace(k)
			if len([]rune(k)) == 1 {
				warnings = append(warnings, fmt.Sprintf("keys.%s: %q is a printable key and cannot fire while typing", name, k))
			}
		}
	}

	return warnings
}
