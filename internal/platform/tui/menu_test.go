package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

func init() {
	registry.Register("menu_test_a", func() registry.Game { return &fakeGame{} })
	registry.Register("menu_test_b", func() registry.Game { return &fakeGame{} })
}

func menuKey(m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.items) < 2 {
		t.Fatalf("expected registered modes in the menu, got %d", len(m.items))
	}

	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := menuKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}
	if m.Selected() == nil || m.Selected().GameID != m.items[1].GameID {
		t.Errorf("expected %q selected, got %+v", m.items[1].GameID, m.Selected())
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
	for range len(m.items) + 3 {
		m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuOpensReplays(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m, cmd := menuKey(m, tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil || !m.WantsReplays() {
		t.Error("tab should open the replay browser")
	}
	if m.Selected() != nil || m.IsQuitting() {
		t.Error("opening replays is neither a selection nor a quit")
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config not resized: %+v", cfg)
	}
}

func openBrowserStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, mode := range []string{"menu_test_a", "menu_test_b", "menu_test_b"} {
		if _, err := store.SaveReplay(storage.Replay{Mode: mode, Config: []byte("{}"), Ticks: 5}); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}
	return store
}

func TestReplayBrowserTabs(t *testing.T) {
	m := NewReplayBrowserModel(openBrowserStore(t), 100, 30)
	if len(m.replays) != 3 {
		t.Fatalf("All tab should list 3 replays, got %d", len(m.replays))
	}

	// Walk to the menu_test_b tab
	for m.tabs[m.cursor].ID != "menu_test_b" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ReplayBrowserModel)
	}
	if len(m.replays) != 2 {
		t.Errorf("menu_test_b tab should list 2 replays, got %d", len(m.replays))
	}
	if !strings.Contains(m.View(), "REPLAYS") {
		t.Error("view should show the title")
	}
}

func TestReplayBrowserDelete(t *testing.T) {
	store := openBrowserStore(t)
	m := NewReplayBrowserModel(store, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = next.(ReplayBrowserModel)
	if m.err != nil {
		t.Fatalf("delete failed: %v", m.err)
	}
	if len(m.replays) != 2 {
		t.Errorf("expected 2 replays after delete, got %d", len(m.replays))
	}

	left, _ := store.ListReplays("", 10)
	if len(left) != 2 {
		t.Errorf("store should hold 2 replays, got %d", len(left))
	}
}

func TestReplayBrowserBack(t *testing.T) {
	m := NewReplayBrowserModel(nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ReplayBrowserModel)
	if cmd == nil || !m.IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
	if m.View() != "" {
		t.Error("view should be empty once leaving")
	}
}

