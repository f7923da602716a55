package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "dropdown/internal/errors"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "tokyonight" {
		t.Fatalf("expected default %s to be tokyonight, got %q", KeyTheme, got)
	}
	if GetBool(KeySearch) {
		t.Fatalf("expected default %s to be false", KeySearch)
	}
	if !GetBool(KeyHideOnSelect) {
		t.Fatalf("expected default %s to be true", KeyHideOnSelect)
	}
	if got := GetInt(KeyMaxHeight); got != 5 {
		t.Fatalf("expected default %s to be 5, got %d", KeyMaxHeight, got)
	}
	if got := GetDuration(KeyAnimationDuration); got != 250*time.Millisecond {
		t.Fatalf("expected default %s to be 250ms, got %s", KeyAnimationDuration, got)
	}
	if got := GetInt(KeyKeyboardHeight); got != DefaultKeyboardHeight {
		t.Fatalf("expected default %s to be %d, got %d", KeyKeyboardHeight, DefaultKeyboardHeight, got)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, ".dropdown"))
	projectCfg := filepath.Join(projectDir, ".dropdown", "config.yaml")
	writeFile(t, projectCfg, `
dropdown:
  placeholder: project
  max-height: 8
items:
  source: /project/items.txt
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
dropdown:
  placeholder: user
  max-height: 3
  search: true
items:
  source: /user/items.txt
`)

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithUserConfig(userCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyPlaceholder); got != "project" {
		t.Fatalf("expected project config to win for %s, got %q", KeyPlaceholder, got)
	}
	if got := GetInt(KeyMaxHeight); got != 8 {
		t.Fatalf("expected project max height, got %d", got)
	}
	if got := GetString(KeyItemsSource); got != "/project/items.txt" {
		t.Fatalf("expected project item source, got %q", got)
	}
	if !GetBool(KeySearch) {
		t.Fatalf("expected %s from user config to survive the merge", KeySearch)
	}
}

func TestProjectConfigFoundFromSubdirectory(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, ".dropdown", "config.yaml"), "dropdown:\n  spacing: 2\n")
	nested := filepath.Join(tmp, "a", "b")
	mustMkdir(t, nested)

	if err := Initialize(WithWorkingDir(nested), WithUserConfig(filepath.Join(tmp, "none.yaml"))); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if got := GetInt(KeySpacing); got != 2 {
		t.Fatalf("expected spacing from ancestor config, got %d", got)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	projectCfg := filepath.Join(projectDir, ".dropdown", "config.yaml")
	writeFile(t, projectCfg, `
dropdown:
  search: false
  row-height: 1
items:
  source: /project/items.txt
`)

	t.Setenv("DD_DROPDOWN_SEARCH", "true")
	t.Setenv("DD_ITEMS_SOURCE", "/env/items.db")

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithProjectConfig(projectCfg),
		WithUserConfig(filepath.Join(tmp, "none.yaml")),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if !GetBool(KeySearch) {
		t.Fatalf("expected environment variable to override %s", KeySearch)
	}
	if got := GetString(KeyItemsSource); got != "/env/items.db" {
		t.Fatalf("expected env override for %s, got %q", KeyItemsSource, got)
	}

	overrides := map[string]any{
		KeySearch:    false,
		KeyRowHeight: 2,
	}
	if err := ApplyOverrides(overrides); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if GetBool(KeySearch) {
		t.Fatalf("expected CLI override to set %s=false", KeySearch)
	}
	if got := GetInt(KeyRowHeight); got != 2 {
		t.Fatalf("expected override for %s = 2, got %d", KeyRowHeight, got)
	}
}

func TestMalformedConfigIsCoded(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "dropdown: [unterminated\n")

	err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !apperrors.IsCode(err, apperrors.CodeConfigurationError) {
		t.Fatalf("expected configuration error code, got %v", apperrors.CodeOf(err))
	}
}

func TestDropdownConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
dropdown:
  placeholder: Choose a city
  search: true
  row-height: 2
  max-height: 10
  width: 40
  hide-on-select: false
  reduce-motion: true
  scrim: false
  animation-duration: 400ms
`)
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	cfg, err := Dropdown()
	if err != nil {
		t.Fatalf("Dropdown returned error: %v", err)
	}
	if cfg.Placeholder != "Choose a city" || !cfg.Search.Enabled {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Style.RowHeight != 2 || cfg.List.MaxHeight != 10 || cfg.List.Width != 40 {
		t.Fatalf("unexpected sizing: %+v %+v", cfg.Style, cfg.List)
	}
	if cfg.Behavior.HideOnSelect || !cfg.Behavior.ShowCheckmark {
		t.Fatalf("unexpected behavior: %+v", cfg.Behavior)
	}
	if !cfg.Animation.ReduceMotion || cfg.Animation.Duration != 400*time.Millisecond {
		t.Fatalf("unexpected animation: %+v", cfg.Animation)
	}
	if cfg.Style.Scrim {
		t.Fatal("expected scrim disabled")
	}
	if len(cfg.Keys.Select.Keys()) == 0 {
		t.Fatal("expected default key bindings")
	}
}

func TestDropdownConfigRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"ZeroRowHeight", KeyRowHeight, 0},
		{"NegativeMaxHeight", KeyMaxHeight, -1},
		{"NegativeSpacing", KeySpacing, -2},
		{"NarrowAnchor", KeyAnchorWidth, 4},
		{"NegativeDuration", KeyAnimationDuration, "-1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			t.Cleanup(reset)
			tmp := t.TempDir()
			if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
				t.Fatalf("Initialize returned error: %v", err)
			}
			if err := Set(tt.key, tt.val); err != nil {
				t.Fatalf("Set returned error: %v", err)
			}
			_, err := Dropdown()
			if !apperrors.IsCode(err, apperrors.CodeConfigurationError) {
				t.Fatalf("expected configuration error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Fatalf("expected error to name %s: %v", tt.key, err)
			}
		})
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	t.Chdir(tmp)
	userCfg := filepath.Join(tmp, "home", ".dropdown", "config.yaml")
	writeFile(t, userCfg, "dropdown:\n  placeholder: keep me\n")
	setUserConfigPathOverride(userCfg)

	if err := SaveTheme("dracula"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "theme: dracula") {
		t.Fatalf("expected theme to be saved, got:\n%s", data)
	}
	if !strings.Contains(string(data), "keep me") {
		t.Fatalf("expected other settings to be preserved, got:\n%s", data)
	}
}

func TestSaveThemePrefersProjectConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, ".dropdown", "config.yaml")
	writeFile(t, projectCfg, "dropdown:\n  search: true\n")
	t.Chdir(tmp)
	setUserConfigPathOverride(filepath.Join(tmp, "user.yaml"))

	if err := SaveTheme("nord"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}
	data, err := os.ReadFile(projectCfg)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "theme: nord") {
		t.Fatalf("expected project config to receive the theme, got:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(tmp, "user.yaml")); err == nil {
		t.Fatal("user config should not be written when a project config exists")
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
