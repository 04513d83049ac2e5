package farm

import (
	"math/rand"

	"github.com/vovakirdan/tui-farm/internal/config"
)

// Director owns the live agent set and decides when and where agents spawn.
type Director struct {
	cfg        config.PlagueConfig
	agents     []*Agent // Spawn order
	consumed   int
	timer      float64
	vulnerable []CropKind // Catalog order
	nextID     AgentID
}

// newDirector creates a director and picks the vulnerable kinds for the run.
// An explicit list in the config wins; otherwise VulnerableCount kinds are
// drawn uniformly from the catalog.
func newDirector(cfg config.FarmConfig, rng *rand.Rand) *Director {
	d := &Director{cfg: cfg.Plague}

	if len(cfg.Plague.VulnerableKinds) > 0 {
		want := make(map[string]bool, len(cfg.Plague.VulnerableKinds))
		for _, k := range cfg.Plague.VulnerableKinds {
			want[k] = true
		}
		for _, cc := range cfg.Crops {
			if want[cc.Kind] {
				d.vulnerable = append(d.vulnerable, CropKind(cc.Kind))
			}
		}
		return d
	}

	n := cfg.Plague.VulnerableCount
	if n > len(cfg.Crops) {
		n = len(cfg.Crops)
	}
	picked := make(map[int]bool, n)
	for _, i := range rng.Perm(len(cfg.Crops))[:n] {
		picked[i] = true
	}
	for i, cc := range cfg.Crops {
		if picked[i] {
			d.vulnerable = append(d.vulnerable, CropKind(cc.Kind))
		}
	}
	return d
}

// Cap returns the population cap: base + consumed/per_step, clamped to
// max_cap when max_cap > 0. It never decreases during a run.
func (d *Director) Cap() int {
	c := d.cfg.Population.BaseCap + d.consumed/d.cfg.Population.CropsPerStep
	if d.cfg.Population.MaxCap > 0 && c > d.cfg.Population.MaxCap {
		c = d.cfg.Population.MaxCap
	}
	return c
}

// Live returns the number of live agents.
func (d *Director) Live() int {
	n := 0
	for _, a := range d.agents {
		if a.Live() {
			n++
		}
	}
	return n
}

// Consumed returns the number of crops agents have eaten this run.
func (d *Director) Consumed() int {
	return d.consumed
}

// SpawnTimer returns seconds accumulated toward the next spawn attempt.
func (d *Director) SpawnTimer() float64 {
	return d.timer
}

// Vulnerable reports whether agents can attack crops of kind k.
func (d *Director) Vulnerable(k CropKind) bool {
	for _, v := range d.vulnerable {
		if v == k {
			return true
		}
	}
	return false
}

// VulnerableKinds returns a copy of the vulnerable kinds in catalog order.
func (d *Director) VulnerableKinds() []CropKind {
	return append([]CropKind(nil), d.vulnerable...)
}

// Agents returns a copy of the live agents in spawn order.
func (d *Director) Agents() []Agent {
	out := make([]Agent, 0, len(d.agents))
	for _, a := range d.agents {
		if a.Live() {
			out = append(out, *a)
		}
	}
	return out
}

// attackerOf returns the live agent whose target resolves to crop id.
func (d *Director) attackerOf(g *Grid, id CropID) *Agent {
	for _, a := range d.agents {
		if a.Live() && a.Target.Crop == id && a.resolve(g) != nil {
			return a
		}
	}
	return nil
}

// spawnCandidates lists cells an agent may spawn on. With no live agents any
// attackable crop qualifies; otherwise only attackable crops next to a crop
// that is already under attack. Row-major order, no duplicates.
func (s *Simulation) spawnCandidates() []*Cell {
	d := s.director
	var out []*Cell
	if d.Live() == 0 {
		for _, cell := range s.grid.Cells() {
			if s.attackable(cell, nil) {
				out = append(out, cell)
			}
		}
		return out
	}

	infested := make(map[Pos]bool)
	for _, a := range d.agents {
		if a.Live() && a.resolve(s.grid) != nil {
			infested[a.Target.Pos] = true
		}
	}
	for _, cell := range s.grid.Cells() {
		if !s.attackable(cell, nil) {
			continue
		}
		for _, n := range cell.Pos.Neighbours() {
			if infested[n] {
				out = append(out, cell)
				break
			}
		}
	}
	return out
}

// spawn attaches a new agent to the crop in cell.
func (d *Director) spawn(cell *Cell) *Agent {
	d.nextID++
	a := &Agent{
		ID:         d.nextID,
		State:      AgentConsuming,
		BaseDamage: d.cfg.BaseDamage,
		Target:     Target{Pos: cell.Pos, Crop: cell.Crop.ID},
	}
	d.agents = append(d.agents, a)
	return a
}

// updateSpawns runs the spawn phase of a tick. The timer resets after every
// attempt whether or not a candidate was found.
func (s *Simulation) updateSpawns(dt float64, res *TickResult) {
	d := s.director
	d.timer += dt
	if d.timer < d.cfg.SpawnCooldown || d.Live() >= d.Cap() {
		return
	}
	d.timer = 0

	candidates := s.spawnCandidates()
	if len(candidates) == 0 {
		return
	}
	cell := candidates[s.rng.Intn(len(candidates))]
	a := d.spawn(cell)
	res.add(Event{Kind: EventSpawned, Agent: a.ID, Crop: cell.Crop.ID, Pos: cell.Pos})
}

// removeTargeting drops every live agent attacking the crop at p and
// returns how many were removed.
func (d *Director) removeTargeting(g *Grid, p Pos) int {
	cell := g.CellAt(p)
	if cell == nil || cell.Crop == nil {
		return 0
	}
	removed := 0
	for _, a := range d.agents {
		if a.Live() && a.Target.Crop == cell.Crop.ID && a.Target.Pos == p {
			a.State = AgentDying
			removed++
		}
	}
	d.removeDying()
	return removed
}

// removeDying compacts the agent list, keeping spawn order.
func (d *Director) removeDying() {
	kept := d.agents[:0]
	for _, a := range d.agents {
		if a.Live() {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(d.agents); i++ {
		d.agents[i] = nil
	}
	d.agents = kept
}
