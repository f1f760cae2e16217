package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func envFunc(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MinLength != 1 {
		t.Errorf("expected MinLength=1, got %d", cfg.MinLength)
	}
	if cfg.ImageCols != 40 {
		t.Errorf("expected ImageCols=40, got %d", cfg.ImageCols)
	}
	if cfg.Avator != "" {
		t.Errorf("expected no default avator, got %q", cfg.Avator)
	}
	if len(cfg.Palette) != 0 {
		t.Errorf("expected empty palette, got %v", cfg.Palette)
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got error: %v", err)
	}
}

func TestLoadFromFile_NonExistent(t *testing.T) {
	cfg, err := LoadFromFile("/nonexistent/path/config.yaml", envFunc(nil))
	if err != nil {
		t.Fatalf("unexpected error for non-existent file: %v", err)
	}
	if cfg.MinLength != 1 {
		t.Errorf("expected default MinLength=1, got %d", cfg.MinLength)
	}
}

func TestLoadFromFile_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `avator: shibe
variant: 2
min_length: 4
image_cols: 32
palette: [81, 82, 83]
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(configPath, envFunc(nil))
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}

	want := &Config{Avator: "shibe", Variant: 2, MinLength: 4, ImageCols: 32, Palette: []int{81, 82, 83}}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("LoadFromFile() = %+v, want %+v", cfg, want)
	}
}

func TestLoadFromFile_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	content := `avator = "neko"
min_length = 3
assets_dir = "/srv/mascots"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(configPath, envFunc(nil))
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Avator != "neko" || cfg.MinLength != 3 || cfg.AssetsDir != "/srv/mascots" {
		t.Errorf("LoadFromFile() = %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.ImageCols != 40 {
		t.Errorf("expected default ImageCols=40, got %d", cfg.ImageCols)
	}
}

func TestLoadFromFile_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(configPath, envFunc(nil))
	if err != nil {
		t.Fatalf("unexpected error for empty file: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("empty file should yield defaults, got %+v", cfg)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("min_length: [not, a, number\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromFile(configPath, envFunc(nil))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), configPath) {
		t.Errorf("error %q should name the config file", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("avator: shibe\nmin_length: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	env := envFunc(map[string]string{
		"BH3_AVATOR":     "neko",
		"BH3_ASSETS_DIR": "/opt/bh3",
		"BH3_MIN_LENGTH": "5",
	})
	cfg, err := LoadFromFile(configPath, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Avator != "neko" || cfg.AssetsDir != "/opt/bh3" || cfg.MinLength != 5 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}

	if _, err := LoadFromFile(configPath, envFunc(map[string]string{"BH3_MIN_LENGTH": "many"})); err == nil {
		t.Error("expected error for non-numeric BH3_MIN_LENGTH")
	}
}

func TestLoad_SearchesXDG(t *testing.T) {
	xdg := t.TempDir()
	dir := filepath.Join(xdg, "bh3")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("min_length = 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFunc(map[string]string{"XDG_CONFIG_HOME": xdg}))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.MinLength != 7 {
		t.Errorf("expected MinLength=7 from XDG config, got %d", cfg.MinLength)
	}
}

func TestConfigSearchPaths(t *testing.T) {
	paths := configSearchPaths(envFunc(map[string]string{"XDG_CONFIG_HOME": "/xdg", "HOME": "/home/doge"}))
	if len(paths) != 4 {
		t.Fatalf("expected 4 search paths, got %v", paths)
	}
	if paths[0] != filepath.Join("/xdg", "bh3", "config.yaml") {
		t.Errorf("first path = %q", paths[0])
	}
	if paths[1] != filepath.Join("/xdg", "bh3", "config.toml") {
		t.Errorf("second path = %q", paths[1])
	}
}

func TestConfigSearchPaths_HomeFromEnv(t *testing.T) {
	home := t.TempDir()
	paths := configSearchPaths(envFunc(map[string]string{"HOME": home}))

	want := []string{
		filepath.Join(home, ".config", "bh3", "config.yaml"),
		filepath.Join(home, ".config", "bh3", "config.toml"),
	}
	if len(paths) != len(want) {
		t.Fatalf("configSearchPaths() = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestLoad_UsesHomeFromEnv(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".config", "bh3")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("min_length: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFunc(map[string]string{"HOME": home}))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.MinLength != 9 {
		t.Errorf("expected MinLength=9 from injected HOME, got %d", cfg.MinLength)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]string{
		"config.yaml": FormatYAML,
		"config.yml":  FormatYAML,
		"config.toml": FormatTOML,
		"CONFIG.TOML": FormatTOML,
		"config":      FormatYAML,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative min_length", func(c *Config) { c.MinLength = -1 }, "min_length"},
		{"negative variant", func(c *Config) { c.Variant = -3 }, "variant"},
		{"narrow image", func(c *Config) { c.ImageCols = 8 }, "image_cols"},
		{"bad palette", func(c *Config) { c.Palette = []int{81, 300} }, "palette[1]"},
		{"zero min_length ok", func(c *Config) { c.MinLength = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
