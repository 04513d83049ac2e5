package farm

import "github.com/vovakirdan/tui-farm/internal/config"

// AgentID identifies a plague agent. IDs increase in spawn order.
type AgentID uint64

// AgentState is the lifecycle state of an agent.
type AgentState int

const (
	AgentSearching AgentState = iota // Target just died, looking for a neighbour
	AgentConsuming                   // Attached to a live crop
	AgentDying                       // No target; removed before the tick ends
)

// String returns the state name.
func (s AgentState) String() string {
	switch s {
	case AgentSearching:
		return "Searching"
	case AgentConsuming:
		return "Consuming"
	case AgentDying:
		return "Dying"
	default:
		return "Unknown"
	}
}

// Target is a weak reference to a crop: the cell it sits in plus its ID.
// It resolves only while that exact crop is still planted there.
type Target struct {
	Pos  Pos
	Crop CropID
}

// Agent is a plague entity attached to at most one crop.
type Agent struct {
	ID         AgentID
	State      AgentState
	BaseDamage float64 // Damage per second at multiplier 1.0
	Target     Target
}

// Live returns true unless the agent is dying.
func (a *Agent) Live() bool {
	return a.State != AgentDying
}

// resolve returns the crop the agent targets, or nil if the handle is stale.
func (a *Agent) resolve(g *Grid) *Crop {
	cell := g.CellAt(a.Target.Pos)
	if cell == nil || cell.Crop == nil || cell.Crop.ID != a.Target.Crop {
		return nil
	}
	return cell.Crop
}

// Multiplier returns the damage multiplier for an agent with n cooperating
// neighbours: min(1 + step*n, cap).
func Multiplier(n int, coop config.CooperationConfig) float64 {
	m := 1 + coop.Step*float64(n)
	if m > coop.Cap {
		m = coop.Cap
	}
	if m < 1 {
		m = 1
	}
	return m
}

// cooperators returns the positions of other live agents' targets that sit
// next to a's target, in N, S, W, E order.
func (s *Simulation) cooperators(a *Agent, targeted map[CropID]*Agent) []Pos {
	var out []Pos
	for _, cell := range s.grid.Adjacent(a.Target.Pos) {
		if cell.Crop == nil {
			continue
		}
		if other, ok := targeted[cell.Crop.ID]; ok && other != a {
			out = append(out, cell.Pos)
		}
	}
	return out
}

// targetIndex maps every crop with a live attacker to that attacker.
func (s *Simulation) targetIndex() map[CropID]*Agent {
	idx := make(map[CropID]*Agent, len(s.director.agents))
	for _, a := range s.director.agents {
		if !a.Live() {
			continue
		}
		if c := a.resolve(s.grid); c != nil {
			idx[c.ID] = a
		}
	}
	return idx
}

// updateAgents runs the agent phase of a tick.
//
// Multipliers are computed once from the agent set as it stands when the
// phase begins, then damage is applied agent by agent in spawn order. A kill
// removes the crop, kills the cell and moves the agent to an adjacent
// vulnerable crop if one is free; otherwise the agent dies this tick.
func (s *Simulation) updateAgents(dt float64, res *TickResult) {
	d := s.director

	// Stale handles mean no target.
	for _, a := range d.agents {
		if a.Live() && a.resolve(s.grid) == nil {
			a.State = AgentDying
			res.add(Event{Kind: EventAgentDied, Agent: a.ID, Pos: a.Target.Pos})
		}
	}

	targeted := s.targetIndex()
	multipliers := make(map[AgentID]float64, len(d.agents))
	for _, a := range d.agents {
		if a.Live() {
			multipliers[a.ID] = Multiplier(len(s.cooperators(a, targeted)), s.cfg.Plague.Cooperation)
		}
	}

	for _, a := range d.agents {
		if !a.Live() {
			continue
		}
		crop := a.resolve(s.grid)
		if !crop.TakeDamage(a.BaseDamage * multipliers[a.ID] * dt) {
			continue
		}

		// Crop consumed.
		at := a.Target.Pos
		cell := s.grid.CellAt(at)
		cell.Crop = nil
		cell.Alive = false
		d.consumed++
		res.add(Event{Kind: EventConsumed, Agent: a.ID, Crop: crop.ID, Pos: at})

		a.State = AgentSearching
		if next := s.relocationTarget(a, at); next != nil {
			a.Target = Target{Pos: next.Pos, Crop: next.Crop.ID}
			a.State = AgentConsuming
			res.add(Event{Kind: EventRelocated, Agent: a.ID, Crop: next.Crop.ID, From: at, Pos: next.Pos})
			continue
		}
		a.State = AgentDying
		res.add(Event{Kind: EventAgentDied, Agent: a.ID, Pos: at})
	}

	d.removeDying()
}

// relocationTarget picks the cell a's next crop sits in among the neighbours
// of from, or nil when none qualifies.
func (s *Simulation) relocationTarget(a *Agent, from Pos) *Cell {
	var candidates []*Cell
	for _, cell := range s.grid.Adjacent(from) {
		if s.attackable(cell, a) {
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	if s.cfg.Plague.Relocation == config.RelocateFirst {
		return candidates[0]
	}
	return candidates[s.rng.Intn(len(candidates))]
}

// attackable reports whether cell holds a live vulnerable crop that no live
// agent other than self is attacking. self may be nil.
func (s *Simulation) attackable(cell *Cell, self *Agent) bool {
	if cell == nil || cell.Crop == nil || !cell.Crop.Alive() {
		return false
	}
	if !s.director.Vulnerable(cell.Crop.Kind) {
		return false
	}
	other := s.director.attackerOf(s.grid, cell.Crop.ID)
	return other == nil || other == self
}
