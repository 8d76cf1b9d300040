package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.BaseURL != "https://api.datamuse.com/words" {
		t.Errorf("Expected datamuse base URL, got %q", cfg.API.BaseURL)
	}

	if cfg.Keys.Rhymes != "ctrl+r" {
		t.Errorf("Expected rhymes key 'ctrl+r', got %q", cfg.Keys.Rhymes)
	}

	if cfg.UI.ShowScores {
		t.Error("Expected ShowScores to be false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			config:      DefaultConfig(),
			wantWarning: false,
		},
		{
			name:        "empty config is valid",
			config:      &Config{},
			wantWarning: false,
		},
		{
			name: "non-http base url",
			config: &Config{
				API: APIConfig{BaseURL: "ftp://example.com/words"},
			},
			wantWarning: true,
		},
		{
			name: "base url with query",
			config: &Config{
				API: APIConfig{BaseURL: "https://example.com/words?max=10"},
			},
			wantWarning: true,
		},
		{
			name: "local mirror",
			config: &Config{
				API: APIConfig{BaseURL: "http://localhost:8080/words"},
			},
			wantWarning: false,
		},
		{
			name: "invalid theme",
			config: &Config{
				UI: UIConfig{Theme: "invalid"},
			},
			wantWarning: true,
		},
		{
			name: "printable rhymes key",
			config: &Config{
				Keys: KeysConfig{Rhymes: "ctrl+r, r"},
			},
			wantWarning: true,
		},
		{
			name: "printable synonyms key",
			config: &Config{
				Keys: KeysConfig{Synonyms: "y"},
			},
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.Validate()
			hasWarnings := len(warnings) > 0
			if hasWarnings != tt.wantWarning {
				t.Errorf("Validate() hasWarnings = %v, want %v. Warnings: %v", hasWarnings, tt.wantWarning, warnings)
			}
		})
	}
}

func TestLoadPreservesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `[api]
base_url = "http://localhost:9000/words"

[keys]
save = "space"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:9000/words" {
		t.Errorf("Expected overridden base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.Keys.Save != "space" {
		t.Errorf("Expected save key 'space', got %q", cfg.Keys.Save)
	}

	// Unspecified values keep defaults
	if cfg.Keys.Rhymes != "ctrl+r" {
		t.Errorf("Expected default rhymes key, got %q", cfg.Keys.Rhymes)
	}
	if cfg.UI.Placeholder != "type a word..." {
		t.Errorf("Expected default placeholder, got %q", cfg.UI.Placeholder)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.API.BaseURL != DefaultConfig().API.BaseURL {
		t.Errorf("Expected defaults, got %+v", cfg.API)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[api\nbase_url ="), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestDefaultConfigContentParses(t *testing.T) {
	var cfg Config
	if err := toml.Unmarshal([]byte(generateDefaultConfigContent()), &cfg); err != nil {
		t.Fatalf("generated config does not parse: %v", err)
	}
	if cfg.API.BaseURL != DefaultConfig().API.BaseURL {
		t.Errorf("Expected base URL %q, got %q", DefaultConfig().API.BaseURL, cfg.API.BaseURL)
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rhymer", "config.toml")

	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("CreateDefaultConfigFile() error: %v", err)
	}
	if _, err := LoadFromPath(path); err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if err := CreateDefaultConfigFile(path); err == nil {
		t.Error("Expected error when file already exists")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.UI.ShowScores = true

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if !loaded.UI.ShowScores {
		t.Error("Expected ShowScores to survive save/load")
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	if path == "" {
		t.Error("ConfigPath should not return empty string")
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected config.toml, got %q", filepath.Base(path))
	}

	dir := filepath.Dir(path)
	if filepath.Base(dir) != "rhymer" {
		t.Errorf("Expected rhymer dir, got %q", filepath.Base(dir))
	}
}

func TestConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got, want := ConfigPath(), filepath.Join("/tmp/xdg", "rhymer", "config.toml"); got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestExportPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		path string
		want string
	}{
		{"~/words.txt", filepath.Join("/home/tester", "words.txt")},
		{"/tmp/words.txt", "/tmp/words.txt"},
		{"relative.txt", "relative.txt"},
		{"~other/words.txt", "~other/words.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			cfg := &Config{Export: ExportConfig{Path: tt.path}}
			if got := cfg.ExportPath(); got != tt.want {
				t.Errorf("ExportPath() = %q, want %q", got, tt.want)
			}
			if strings.HasPrefix(tt.path, "~/") && strings.HasPrefix(cfg.ExportPath(), "~") {
				t.Error("tilde not expanded")
			}
		})
	}
}
