package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/particlesim/internal/config"
)

func press(a App, msg tea.Msg) App {
	next, _ := a.Update(msg)
	return next.(App)
}

func TestAppPickPresetAndStart(t *testing.T) {
	a := *NewApp(nil)
	a = press(a, tea.WindowSizeMsg{Width: 100, Height: 30})

	for i, name := range a.presets {
		if name == "pinball" {
			a.cursor = i
		}
	}
	a = press(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.state != stateConfig {
		t.Fatalf("expected config screen, got state %d", a.state)
	}
	if a.cfg.Bodies != config.Presets["pinball"].Bodies {
		t.Errorf("expected pinball population, got %d", a.cfg.Bodies)
	}
	if !strings.Contains(a.View(), "PINBALL") {
		t.Error("expected preset name in config view")
	}

	a = press(a, key("s"))
	if a.state != stateSim {
		t.Fatalf("expected live view, got state %d (err %v)", a.state, a.err)
	}
	if a.live.world.Len() != config.Presets["pinball"].Bodies {
		t.Errorf("expected %d bodies, got %d", config.Presets["pinball"].Bodies, a.live.world.Len())
	}
	if a.live.canvas.Width != 100-2*canvasPadX-panelWidth-1 {
		t.Errorf("expected live view sized to the terminal, got %d cols", a.live.canvas.Width)
	}
}

func TestAppEditField(t *testing.T) {
	a := *NewApp(nil)
	a = press(a, tea.KeyMsg{Type: tea.KeyEnter})

	// bodies is the first field
	a = press(a, tea.KeyMsg{Type: tea.KeyEnter})
	if !a.editing {
		t.Fatal("expected edit mode")
	}
	for range a.editBuf {
		a = press(a, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	a = press(a, key("2"))
	a = press(a, key("5"))
	a = press(a, key("x"))
	a = press(a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.err != nil {
		t.Fatalf("unexpected error: %v", a.err)
	}
	if a.cfg.Bodies != 25 {
		t.Errorf("expected 25 bodies, got %d", a.cfg.Bodies)
	}
}

func TestAppRejectsInvalidField(t *testing.T) {
	a := *NewApp(nil)
	a = press(a, tea.KeyMsg{Type: tea.KeyEnter})
	a.field = 2 // scale
	a = press(a, tea.KeyMsg{Type: tea.KeyEnter})
	a.editBuf = "0"
	a = press(a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.err == nil {
		t.Fatal("expected validation error")
	}
	a = press(a, key("s"))
	if a.state == stateSim {
		t.Error("expected start to be refused")
	}
}
