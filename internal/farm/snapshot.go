package farm

// Snapshot is a detached read model of the simulation. Mutating it has no
// effect on the simulation.
type Snapshot struct {
	Rows     int
	Cols     int
	Now      float64
	GameOver bool
	Cells    []CellView // Row-major
	Agents   []AgentView
	Economy  Economy
	Director DirectorView
}

// CellView describes one cell.
type CellView struct {
	Pos   Pos
	Alive bool
	Crop  *CropView // nil when empty
}

// CropView describes a planted crop.
type CropView struct {
	ID          CropID
	Kind        CropKind
	Name        string
	Stage       Stage
	HP          float64
	MaxHP       float64
	Progress    float64 // Fraction of the current stage elapsed
	Targeted    bool
	Harvestable bool
}

// AgentView describes a live agent. Pos is the cell of its target crop.
type AgentView struct {
	ID         AgentID
	State      AgentState
	Pos        Pos
	Crop       CropID
	Multiplier float64
	Neighbours []Pos // Targets of cooperating agents
}

// DirectorView describes the spawn policy state.
type DirectorView struct {
	Live          int
	Cap           int
	Consumed      int
	Vulnerable    []CropKind
	SpawnTimer    float64
	SpawnCooldown float64
}

// Snapshot returns the current read model.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:     s.grid.Rows(),
		Cols:     s.grid.Cols(),
		Now:      s.now,
		GameOver: s.gameOver,
		Cells:    make([]CellView, 0, s.grid.Rows()*s.grid.Cols()),
		Economy:  s.econ,
		Director: DirectorView{
			Live:          s.director.Live(),
			Cap:           s.director.Cap(),
			Consumed:      s.director.Consumed(),
			Vulnerable:    s.director.VulnerableKinds(),
			SpawnTimer:    s.director.SpawnTimer(),
			SpawnCooldown: s.cfg.Plague.SpawnCooldown,
		},
	}

	targeted := s.targetIndex()
	for _, cell := range s.grid.Cells() {
		cv := CellView{Pos: cell.Pos, Alive: cell.Alive}
		if c := cell.Crop; c != nil {
			spec, _ := s.cfg.Crop(string(c.Kind))
			_, attacked := targeted[c.ID]
			cv.Crop = &CropView{
				ID:          c.ID,
				Kind:        c.Kind,
				Name:        spec.Name,
				Stage:       c.Stage,
				HP:          c.HP,
				MaxHP:       c.MaxHP,
				Progress:    c.Progress(s.now, spec),
				Targeted:    attacked,
				Harvestable: c.Stage == StageReady && c.Alive() && !attacked,
			}
		}
		snap.Cells = append(snap.Cells, cv)
	}

	for _, a := range s.director.agents {
		if !a.Live() {
			continue
		}
		neighbours := s.cooperators(a, targeted)
		snap.Agents = append(snap.Agents, AgentView{
			ID:         a.ID,
			State:      a.State,
			Pos:        a.Target.Pos,
			Crop:       a.Target.Crop,
			Multiplier: Multiplier(len(neighbours), s.cfg.Plague.Cooperation),
			Neighbours: neighbours,
		})
	}
	return snap
}

// Cell returns the view of the cell at p.
func (s Snapshot) Cell(p Pos) (CellView, bool) {
	if p.Row < 0 || p.Row >= s.Rows || p.Col < 0 || p.Col >= s.Cols {
		return CellView{}, false
	}
	return s.Cells[p.Row*s.Cols+p.Col], true
}

// AgentAt returns the agent attacking the crop at p.
func (s Snapshot) AgentAt(p Pos) (AgentView, bool) {
	for _, a := range s.Agents {
		if a.Pos == p {
			return a, true
		}
	}
	return AgentView{}, false
}
