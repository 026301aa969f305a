package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blackbox/internal/core"
	"github.com/vovakirdan/tui-blackbox/internal/games/blackbox"
	"github.com/vovakirdan/tui-blackbox/internal/storage"
)

type fakeStore struct {
	saved   []storage.Result
	high    int
	saveErr error
}

func (f *fakeStore) SaveResult(r storage.Result) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.saved = append(f.saved, r)
	return int64(len(f.saved)), nil
}

func (f *fakeStore) HighScore(string) (int, error) {
	return f.high, nil
}

// newTestModel plays a single atom at (1,1), one step below the start cursor.
func newTestModel(t *testing.T, store ResultStore) *Model {
	t.Helper()
	layout := blackbox.FixedLayout{
		LayoutID:    "single",
		LayoutTitle: "Single",
		Placement:   []core.Coord{core.C(1, 1)},
	}
	m, err := NewModel(blackbox.NewSession(layout), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{
		Store:    store,
		ShowHelp: true,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestModelSolveSavesResult(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)

	// Fire straight into the atom, then guess it
	press(m, runeKey('f'), tea.KeyMsg{Type: tea.KeyDown}, runeKey('g'))

	state := m.State()
	if !state.GameOver || !state.Solved {
		t.Fatalf("state = %+v, want solved", state)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved %d results, want 1", len(store.saved))
	}

	got := store.saved[0]
	want := storage.Result{LayoutID: "single", Score: blackbox.StartingScore - 1, Rays: 1, Solved: true}
	if got != want {
		t.Errorf("saved %+v, want %+v", got, want)
	}
	if m.HighScore() != want.Score {
		t.Errorf("HighScore() = %d, want %d", m.HighScore(), want.Score)
	}

	// Further input does not save again
	press(m, runeKey('g'), runeKey('v'))
	if len(store.saved) != 1 {
		t.Errorf("saved %d results after the end, want 1", len(store.saved))
	}
}

func TestModelRevealSavesUnsolved(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)

	press(m, runeKey('v'))

	if len(store.saved) != 1 || store.saved[0].Solved {
		t.Fatalf("saved = %+v, want one unsolved result", store.saved)
	}
}

func TestModelRestart(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)

	// Restart is ignored while playing
	press(m, runeKey('f'), runeKey('r'))
	if m.session.Snapshot().Rays != 1 {
		t.Fatal("restart during play should be ignored")
	}

	press(m, runeKey('v'), runeKey('r'))
	if m.State().GameOver {
		t.Error("restart after the end should start a new game")
	}
	if m.session.Snapshot().Rays != 0 {
		t.Error("new game should have no rays")
	}

	press(m, runeKey('v'))
	if len(store.saved) != 2 {
		t.Errorf("saved %d results, want one per finished game", len(store.saved))
	}
}

func TestModelSaveErrorKeepsPlaying(t *testing.T) {
	m := newTestModel(t, &fakeStore{saveErr: errors.New("disk full")})

	if cmd := press(m, runeKey('v')); cmd != nil {
		t.Error("a failed save should not stop the program")
	}
	if !m.State().GameOver {
		t.Error("game should be over")
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runeKey('v'))
	if !m.State().GameOver {
		t.Error("game should be over")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	if cmd := press(m, runeKey('q')); cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &fakeStore{high: 20})

	out := m.View()
	if !strings.Contains(out, "BLACK BOX - Single") {
		t.Error("View() is missing the title")
	}
	if !strings.Contains(out, "Best: 20") {
		t.Error("View() is missing the best score")
	}
	if !strings.Contains(out, "fire ray") {
		t.Error("View() is missing the help line")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runeKey('f'))

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	if m.session.Snapshot().Status != blackbox.StatusPausedSmall {
		t.Error("small window should pause the session")
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("View() should explain the window is too small")
	}

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	snap := m.session.Snapshot()
	if snap.Status != blackbox.StatusPlaying || snap.Rays != 1 {
		t.Errorf("snapshot after resize = %+v, want the same game still playing", snap)
	}
}
