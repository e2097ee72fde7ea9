package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	state    core.GameState
	steps    int
	spawns   int
	resets   int
	lastIn   core.InputFrame
	endAfter int // steps until game over, 0 for never
	runtime  core.RuntimeConfig
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) error {
	g.resets++
	g.runtime = cfg
	if g.state.GameOver {
		g.state = core.GameState{Epoch: g.state.Epoch + 1}
		g.steps = 0
	}
	return nil
}

func (g *fakeGame) Step(epoch uint64, in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = core.NewInputFrame()
	for a, n := range in.Actions {
		g.lastIn.Actions[a] = n
	}
	g.lastIn.PointerX, g.lastIn.HasPointer = in.PointerX, in.HasPointer

	res := core.StepResult{Applied: true}
	if g.endAfter > 0 && g.steps >= g.endAfter {
		g.state.GameOver = true
		res.Ended = true
	}
	res.State = g.state
	return res
}

func (g *fakeGame) Spawn(uint64) bool {
	g.spawns++
	return true
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Periods() (time.Duration, time.Duration) {
	return 16 * time.Millisecond, 1500 * time.Millisecond
}

func (g *fakeGame) Resize(cfg core.RuntimeConfig) { g.runtime = cfg }

func newTestModel(g *fakeGame) Model {
	return NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 1})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestTickAppliesInputAndReschedules(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := update(t, m, TickMsg{Epoch: 0})

	if g.steps != 1 {
		t.Fatalf("expected 1 step, got %d", g.steps)
	}
	if n := g.lastIn.Count(core.ActionShoot); n != 2 {
		t.Errorf("expected 2 shots in the frame, got %d", n)
	}
	if cmd == nil {
		t.Error("tick loop should reschedule while playing")
	}
	if m.inputFrame.Has(core.ActionShoot) {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	g := &fakeGame{state: core.GameState{Epoch: 2}}
	m := newTestModel(g)

	_, cmd := update(t, m, TickMsg{Epoch: 1})
	if g.steps != 0 || cmd != nil {
		t.Error("a tick from an older epoch must not step or reschedule")
	}

	_, cmd = update(t, m, SpawnMsg{Epoch: 1})
	if g.spawns != 0 || cmd != nil {
		t.Error("a spawn from an older epoch must not run or reschedule")
	}
}

func TestGameOverStopsLoops(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := newTestModel(g)

	m, cmd := update(t, m, TickMsg{Epoch: 0})
	if cmd != nil {
		t.Error("tick loop should stop on game over")
	}
	if !m.State().GameOver {
		t.Fatal("model should know the game is over")
	}

	_, cmd = update(t, m, SpawnMsg{Epoch: 0})
	if g.spawns != 0 || cmd != nil {
		t.Error("no spawns after game over")
	}
	_, cmd = update(t, m, TickMsg{Epoch: 0})
	if g.steps != 1 || cmd != nil {
		t.Error("no ticks after game over")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := newTestModel(g)
	restart := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}

	m, cmd := update(t, m, restart)
	if g.resets != 0 || cmd != nil {
		t.Error("restart while playing should do nothing")
	}

	m, _ = update(t, m, TickMsg{Epoch: 0})
	m, cmd = update(t, m, restart)
	if g.resets != 1 {
		t.Fatalf("expected one Reset, got %d", g.resets)
	}
	if cmd == nil {
		t.Error("restart should start fresh loops")
	}
	if st := m.State(); st.GameOver || st.Epoch != 1 {
		t.Errorf("unexpected state after restart: %+v", st)
	}

	g.endAfter = 0
	m, cmd = update(t, m, TickMsg{Epoch: 1})
	if cmd == nil || g.steps != 1 {
		t.Error("ticks of the new epoch should run")
	}
	_, cmd = update(t, m, TickMsg{Epoch: 0})
	if cmd != nil {
		t.Error("old epoch loop must end")
	}
}

func TestMouseInput(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.MouseMsg{X: 12, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 30, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 30, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{Epoch: 0})

	if !g.lastIn.HasPointer || g.lastIn.PointerX != 30 {
		t.Errorf("latest drag position should win, got %+v", g.lastIn)
	}
	if g.lastIn.Count(core.ActionShoot) != 1 {
		t.Error("left click should shoot")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 0 {
		t.Error("resize must not reset the game")
	}
	if g.runtime.ScreenW != 100 {
		t.Errorf("game should learn the new width, got %d", g.runtime.ScreenW)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || m.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionShoot},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}
	for _, tc := range tests {
		if got := keys.Action(tc.msg); got != tc.want {
			t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorRed)
	s.DrawText(3, 0, "def")

	out := RenderScreen(s)
	if lines := strings.Count(out, "\n"); lines != 1 {
		t.Errorf("expected 2 rows, got %d newlines", lines)
	}
	if !strings.Contains(out, "abc") || !strings.Contains(out, "def") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

func TestViewIncludesHelp(t *testing.T) {
	m := newTestModel(&fakeGame{})
	view := m.View()
	if !strings.Contains(view, "fake") || !strings.Contains(view, "shoot") {
		t.Errorf("view should show the game and the help footer:\n%s", view)
	}
}
