package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-farm/internal/core"
)

type stubGame struct {
	opts  Options
	state core.GameState
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}

func TestRegisterCreate(t *testing.T) {
	Register(GameInfo{ID: "test_stub", Title: "Stub"}, func(opts Options) (Game, error) {
		return &stubGame{opts: opts}, nil
	})

	if !Exists("test_stub") {
		t.Fatal("registered game should exist")
	}
	info, ok := Info("test_stub")
	if !ok || info.Title != "Stub" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	g, err := Create("test_stub", Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.(*stubGame).opts.Difficulty != "hard" {
		t.Error("options should reach the factory")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(Options) (Game, error) { return &stubGame{}, nil }
	Register(GameInfo{ID: "test_dup"}, f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "test_dup"}, f)
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("test_missing", Options{}); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("bad config")
	Register(GameInfo{ID: "test_broken"}, func(Options) (Game, error) { return nil, boom })

	_, err := Create("test_broken", Options{})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped factory error, got %v", err)
	}
	if !strings.Contains(err.Error(), "test_broken") {
		t.Errorf("error should name the game, got %v", err)
	}
}

func TestListSorted(t *testing.T) {
	f := func(Options) (Game, error) { return &stubGame{}, nil }
	Register(GameInfo{ID: "test_zz"}, f)
	Register(GameInfo{ID: "test_aa"}, f)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}
}
