package theme

import (
	"slices"
	"testing"
)

func TestPalettesRegistered(t *testing.T) {
	available := Available()
	for _, name := range []string{"catppuccin", "dracula", "gruvbox", "nord", "tokyonight"} {
		if !slices.Contains(available, name) {
			t.Errorf("expected palette %q to be registered, got %v", name, available)
		}
	}
	if !slices.IsSorted(available) {
		t.Errorf("Available() should be sorted, got %v", available)
	}
}

func TestSetAndCurrent(t *testing.T) {
	original := CurrentName()
	t.Cleanup(func() { Set(original) })

	if !Set("nord") {
		t.Fatal("Set(nord) returned false")
	}
	if CurrentName() != "nord" {
		t.Errorf("CurrentName() = %q, want nord", CurrentName())
	}
	if Current().Surface != nord.Surface {
		t.Error("Current() did not return the nord palette")
	}
	if Set("does-not-exist") {
		t.Error("Set should fail for unknown palettes")
	}
	if CurrentName() != "nord" {
		t.Error("failed Set must not change the active palette")
	}
}

func TestCycleWraps(t *testing.T) {
	original := CurrentName()
	t.Cleanup(func() { Set(original) })

	names := Available()
	Set(names[len(names)-1])
	if got := Cycle(); got != names[0] {
		t.Errorf("Cycle() from last = %q, want %q", got, names[0])
	}
}

func TestPalettesHaveAllRoles(t *testing.T) {
	for _, name := range Available() {
		p := globalManager.palettes[name]
		roles := map[string]string{
			"Text":       p.Text.Dark,
			"TextMuted":  p.TextMuted.Dark,
			"Surface":    p.Surface.Dark,
			"Selection":  p.Selection.Dark,
			"Primary":    p.Primary.Dark,
			"Accent":     p.Accent.Dark,
			"Background": p.Background.Dark,
		}
		for role, v := range roles {
			if v == "" {
				t.Errorf("palette %q missing dark %s", name, role)
			}
		}
	}
}
