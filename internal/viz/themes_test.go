package viz

import "testing"

func TestThemeLookup(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(Themes) || names[0] != "cyberpunk" {
		t.Fatalf("unexpected theme names: %v", names)
	}
	for _, name := range names {
		if got := GetTheme(name); got.Name != name {
			t.Errorf("GetTheme(%q) returned %q", name, got.Name)
		}
	}
	if got := GetTheme("nope"); got.Name != "cyberpunk" {
		t.Errorf("expected cyberpunk fallback, got %q", got.Name)
	}
	if got := NextTheme(names[len(names)-1]); got.Name != names[0] {
		t.Errorf("expected wrap to %q, got %q", names[0], got.Name)
	}
}

func TestRetroTintsStatusColours(t *testing.T) {
	retro, ocean := GetTheme("retro"), GetTheme("ocean")
	if retro.Warning == ocean.Warning {
		t.Error("retro should carry its own warning colour")
	}
	if ocean.Error == "" || ocean.Background == "" {
		t.Error("expected shared status and background colours to be filled")
	}
}
