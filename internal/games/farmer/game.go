// Package farmer adapts the farm simulation to the platform: it owns the
// cursor, maps semantic actions to farm commands, steps the simulation with
// a fixed dt and draws the read model as text.
package farmer

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/farm"
	"github.com/vovakirdan/tui-farm/internal/registry"
)

// messageTicks is how long a feedback line stays in the status bar.
const messageTicks = 90

// Game implements registry.Game for one farm variant.
type Game struct {
	variant string
	title   string
	cfg     config.FarmConfig

	sim  *farm.Simulation
	seed int64
	dt   float64
	tick uint64

	cursor         farm.Pos
	showIndicators bool
	paused         bool
	tooSmall       bool

	screenW int
	screenH int

	message     string
	messageLeft int
}

var variants = []registry.GameInfo{
	{
		ID:          config.VariantFarm,
		Title:       "Farmer vs. Plague",
		Description: "Grow and sell crops while a spreading plague eats the field.",
	},
	{
		ID:          config.VariantClassic,
		Title:       "Farmer vs. Plague (Classic)",
		Description: "Tighter budget, one pest to start, no ceiling on the swarm.",
	},
}

func init() {
	for _, info := range variants {
		registry.Register(info, factory(info))
	}
}

// factory loads the variant's config, applies the difficulty preset and
// builds a game.
func factory(info registry.GameInfo) registry.Factory {
	return func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadFarm(info.ID, opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		return New(info.ID, info.Title, config.ApplyFarmPreset(cfg, preset))
	}
}

// New creates a game for the given variant and configuration.
func New(variant, title string, cfg config.FarmConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("farmer: %w", err)
	}
	return &Game{
		variant:        variant,
		title:          title,
		cfg:            cfg.Clone(),
		showIndicators: true,
	}, nil
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.variant }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset starts a fresh run seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	sim, err := farm.New(g.cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		// The config was validated in New.
		panic(fmt.Sprintf("farmer: %v", err))
	}
	g.sim = sim
	g.seed = cfg.Seed
	g.dt = cfg.DT()
	g.tick = 0
	g.cursor = farm.P(0, 0)
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.setMessage(g.intro())
}

// Resize adapts the layout to a new terminal size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step applies this frame's input and advances the simulation by one dt.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.messageLeft > 0 {
		g.messageLeft--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.sim.Restart()
		g.cursor = farm.P(0, 0)
		g.paused = false
		g.setMessage(g.intro())
		return core.StepResult{State: g.State(), Messages: []string{"Run restarted"}}
	}

	if g.sim.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var messages []string
	if msg := g.handleInput(in); msg != "" {
		g.setMessage(msg)
		messages = append(messages, msg)
	}

	res := g.sim.Tick(g.dt)
	for _, ev := range res.Events {
		if msg := g.describe(ev); msg != "" {
			g.setMessage(msg)
			messages = append(messages, msg)
		}
	}

	return core.StepResult{State: g.State(), Messages: messages}
}

// handleInput applies cursor, selection and tool actions. It returns a
// feedback line for rejected commands.
func (g *Game) handleInput(in core.InputFrame) string {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	switch {
	case in.Has(core.ActionToolPlant):
		g.sim.SelectAction(farm.ActionPlant)
	case in.Has(core.ActionToolHarvest):
		g.sim.SelectAction(farm.ActionHarvest)
	case in.Has(core.ActionToolPesticide):
		g.sim.SelectAction(farm.ActionPesticide)
	}

	for a := core.ActionCrop1; a <= core.ActionCrop4; a++ {
		if !in.Has(a) {
			continue
		}
		if slot, _ := a.CropSlot(); slot < len(g.cfg.Crops) {
			g.sim.SelectCropKind(farm.CropKind(g.cfg.Crops[slot].Kind))
			g.sim.SelectAction(farm.ActionPlant)
		}
	}

	if in.Has(core.ActionToggleIndicators) {
		g.showIndicators = !g.showIndicators
	}

	if in.Has(core.ActionUse) {
		action := g.sim.Economy().SelectedAction
		if reason := g.rejection(action); reason != "" {
			return reason
		}
		g.sim.Apply(g.cursor)
	}
	return ""
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor.Row = core.Clamp(g.cursor.Row+dr, 0, g.sim.Rows()-1)
	g.cursor.Col = core.Clamp(g.cursor.Col+dc, 0, g.sim.Cols()-1)
}

// rejection explains why action would fail at the cursor, or returns ""
// when it would be applied.
func (g *Game) rejection(action farm.Action) string {
	snap := g.sim.Snapshot()
	cell, _ := snap.Cell(g.cursor)
	money := snap.Economy.Money

	switch action {
	case farm.ActionPlant:
		spec, ok := g.cfg.Crop(string(snap.Economy.SelectedKind))
		switch {
		case !ok:
			return "Pick a crop first"
		case !cell.Alive:
			return "Nothing grows in dead soil"
		case cell.Crop != nil:
			return "This plot is already planted"
		case money < spec.PlantingCost:
			return fmt.Sprintf("%s costs $%d", spec.Name, spec.PlantingCost)
		}
	case farm.ActionHarvest:
		switch {
		case cell.Crop == nil:
			return "Nothing to harvest here"
		case cell.Crop.Targeted:
			return "Cure the plague before harvesting"
		case !cell.Crop.Harvestable:
			return fmt.Sprintf("%s is not ready yet", cell.Crop.Name)
		}
	case farm.ActionPesticide:
		switch {
		case cell.Crop == nil || !cell.Crop.Targeted:
			return "No plague on this plot"
		case money < g.cfg.Economy.PesticideCost:
			return fmt.Sprintf("Pesticide costs $%d", g.cfg.Economy.PesticideCost)
		}
	}
	return ""
}

// describe turns an engine event into a status line. Growth is left silent.
func (g *Game) describe(ev farm.Event) string {
	switch ev.Kind {
	case farm.EventSpawned:
		return fmt.Sprintf("Plague appeared at %s", ev.Pos)
	case farm.EventConsumed:
		return fmt.Sprintf("Plague consumed the crop at %s", ev.Pos)
	case farm.EventRelocated:
		return fmt.Sprintf("Plague spread %s -> %s", ev.From, ev.Pos)
	case farm.EventAgentDied:
		return fmt.Sprintf("Plague at %s starved", ev.Pos)
	case farm.EventGameOver:
		return "The farm is lost"
	default:
		return ""
	}
}

func (g *Game) intro() string {
	snap := g.sim.Snapshot()
	names := ""
	for i, k := range snap.Director.Vulnerable {
		if i > 0 {
			names += ", "
		}
		if spec, ok := g.cfg.Crop(string(k)); ok {
			names += spec.Name
		} else {
			names += string(k)
		}
	}
	return fmt.Sprintf("A plague stirs. It hungers for: %s", names)
}

func (g *Game) setMessage(msg string) {
	g.message = msg
	g.messageLeft = messageTicks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Economy().Harvested,
		GameOver: g.sim.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Summary reports the run for the leaderboard.
func (g *Game) Summary() core.RunSummary {
	econ := g.sim.Economy()
	snap := g.sim.Snapshot()
	return core.RunSummary{
		Variant:    g.variant,
		Difficulty: g.cfg.Difficulty,
		Seed:       g.seed,
		Money:      econ.Money,
		Harvested:  econ.Harvested,
		Eliminated: econ.Eliminated,
		Consumed:   snap.Director.Consumed,
		Duration:   g.sim.Now(),
	}
}

// Simulation exposes the running simulation for headless drivers.
func (g *Game) Simulation() *farm.Simulation {
	return g.sim
}
