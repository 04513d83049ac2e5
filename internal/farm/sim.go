package farm

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-farm/internal/config"
)

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventGrew      EventKind = iota // Crop advanced one stage
	EventSpawned                    // Director placed a new agent
	EventConsumed                   // Agent ate a crop; the cell died
	EventRelocated                  // Agent moved to an adjacent crop
	EventAgentDied                  // Agent had nowhere to go
	EventGameOver                   // Terminal condition reached
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventGrew:
		return "grew"
	case EventSpawned:
		return "spawned"
	case EventConsumed:
		return "consumed"
	case EventRelocated:
		return "relocated"
	case EventAgentDied:
		return "agent_died"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event records one state change during a tick. Unused fields are zero.
type Event struct {
	Kind  EventKind
	Pos   Pos
	From  Pos // Relocation origin
	Agent AgentID
	Crop  CropID
	Stage Stage // New stage for EventGrew
}

// String renders the event for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventGrew:
		return fmt.Sprintf("crop %d at %s grew to %s", e.Crop, e.Pos, e.Stage)
	case EventSpawned:
		return fmt.Sprintf("agent %d spawned on crop %d at %s", e.Agent, e.Crop, e.Pos)
	case EventConsumed:
		return fmt.Sprintf("agent %d consumed crop %d at %s", e.Agent, e.Crop, e.Pos)
	case EventRelocated:
		return fmt.Sprintf("agent %d moved %s -> %s", e.Agent, e.From, e.Pos)
	case EventAgentDied:
		return fmt.Sprintf("agent %d died at %s", e.Agent, e.Pos)
	case EventGameOver:
		return "game over"
	default:
		return e.Kind.String()
	}
}

// TickResult contains what happened during one tick.
type TickResult struct {
	Now      float64
	Events   []Event
	GameOver bool
}

func (r *TickResult) add(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns the number of events of kind k.
func (r TickResult) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Simulation owns the whole farm state: grid, agents, economy and clock.
// It is not safe for concurrent use; drive it from one goroutine.
type Simulation struct {
	cfg      config.FarmConfig
	rng      *rand.Rand
	grid     *Grid
	director *Director
	econ     Economy
	now      float64
	gameOver bool

	nextCropID CropID
}

// New validates cfg and creates a simulation drawing randomness from rng.
// A nil rng is seeded with 1.
func New(cfg config.FarmConfig, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("farm: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &Simulation{
		cfg: cfg.Clone(),
		rng: rng,
	}
	s.reset()
	return s, nil
}

// reset rebuilds every component from the config. The RNG stream continues.
func (s *Simulation) reset() {
	s.grid = NewGrid(s.cfg.Grid.Rows, s.cfg.Grid.Cols)
	s.director = newDirector(s.cfg, s.rng)
	s.econ = Economy{
		Money:          s.cfg.Economy.StartingMoney,
		SelectedKind:   CropKind(s.cfg.Crops[0].Kind),
		SelectedAction: ActionPlant,
	}
	s.now = 0
	s.gameOver = false
	s.nextCropID = 0
}

// Restart reinitializes the run. It is the only command accepted after
// game over.
func (s *Simulation) Restart() {
	s.reset()
}

// Tick advances the simulation by dt seconds. Within a tick crops grow
// first, then agents deal damage and relocate, then the director may spawn,
// then the game-over condition is evaluated. Negative dt counts as zero.
// Once the game is over Tick does nothing.
func (s *Simulation) Tick(dt float64) TickResult {
	if s.gameOver {
		return TickResult{Now: s.now, GameOver: true}
	}
	if !(dt > 0) {
		dt = 0
	}
	s.now += dt
	res := TickResult{Now: s.now}

	s.updateGrowth(&res)
	s.updateAgents(dt, &res)
	s.updateSpawns(dt, &res)

	if s.checkGameOver() {
		res.add(Event{Kind: EventGameOver})
	}
	res.GameOver = s.gameOver
	return res
}

func (s *Simulation) updateGrowth(res *TickResult) {
	for _, cell := range s.grid.Cells() {
		c := cell.Crop
		if c == nil {
			continue
		}
		spec, _ := s.cfg.Crop(string(c.Kind))
		if c.Grow(s.now, spec) {
			res.add(Event{Kind: EventGrew, Crop: c.ID, Pos: cell.Pos, Stage: c.Stage})
		}
	}
}

// checkGameOver latches the terminal state and reports whether it was just
// entered. The game ends when nothing is growing or harvestable and either
// money cannot buy the cheapest crop or no cell is left to plant in.
func (s *Simulation) checkGameOver() bool {
	if s.gameOver {
		return false
	}
	var harvestable, growing, plantable bool
	for _, cell := range s.grid.Cells() {
		if !cell.Alive {
			continue
		}
		if cell.Crop == nil {
			plantable = true
			continue
		}
		if s.Harvestable(cell.Pos) {
			harvestable = true
		} else if cell.Crop.Alive() {
			growing = true
		}
	}
	if harvestable || growing {
		return false
	}
	if s.econ.Money < s.cfg.CheapestPlantingCost() || !plantable {
		s.gameOver = true
		return true
	}
	return false
}

// Harvestable reports whether the crop at p is Ready, alive and not under
// attack.
func (s *Simulation) Harvestable(p Pos) bool {
	cell := s.grid.CellAt(p)
	if cell == nil || cell.Crop == nil {
		return false
	}
	c := cell.Crop
	return c.Stage == StageReady && c.Alive() && s.director.attackerOf(s.grid, c.ID) == nil
}

// Targeted reports whether a live agent is attacking the crop at p.
func (s *Simulation) Targeted(p Pos) bool {
	cell := s.grid.CellAt(p)
	if cell == nil || cell.Crop == nil {
		return false
	}
	return s.director.attackerOf(s.grid, cell.Crop.ID) != nil
}

// GameOver reports whether the run has ended.
func (s *Simulation) GameOver() bool { return s.gameOver }

// Now returns the simulation time in seconds.
func (s *Simulation) Now() float64 { return s.now }

// Economy returns a copy of the economy state.
func (s *Simulation) Economy() Economy { return s.econ }

// Config returns a copy of the configuration the simulation runs with.
func (s *Simulation) Config() config.FarmConfig { return s.cfg.Clone() }

// Rows returns the grid height.
func (s *Simulation) Rows() int { return s.grid.Rows() }

// Cols returns the grid width.
func (s *Simulation) Cols() int { return s.grid.Cols() }
