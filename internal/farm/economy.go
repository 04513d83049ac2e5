package farm

// Action is the tool the player has selected for the next Apply.
type Action int

const (
	ActionPlant Action = iota
	ActionHarvest
	ActionPesticide
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionPlant:
		return "plant"
	case ActionHarvest:
		return "harvest"
	case ActionPesticide:
		return "pesticide"
	default:
		return "unknown"
	}
}

// ParseAction converts a name into an Action.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "plant":
		return ActionPlant, true
	case "harvest":
		return ActionHarvest, true
	case "pesticide", "cure":
		return ActionPesticide, true
	default:
		return 0, false
	}
}

// Economy holds the player's money, counters and current selection.
type Economy struct {
	Money          int
	Harvested      int
	Eliminated     int
	SelectedKind   CropKind
	SelectedAction Action
}

// Plant puts a new crop of kind at p and charges its planting cost.
// Rejected when the game is over, p is out of bounds, the kind is unknown,
// the cell is dead or occupied, or money is short.
func (s *Simulation) Plant(p Pos, kind CropKind) bool {
	if s.gameOver {
		return false
	}
	cell := s.grid.CellAt(p)
	if cell == nil || !cell.Plantable() {
		return false
	}
	spec, ok := s.cfg.Crop(string(kind))
	if !ok || s.econ.Money < spec.PlantingCost {
		return false
	}

	s.econ.Money -= spec.PlantingCost
	s.nextCropID++
	cell.Crop = newCrop(s.nextCropID, spec, s.now)
	s.checkGameOver()
	return true
}

// Harvest collects a Ready, healthy, unattacked crop at p and credits its
// reward. The cell stays alive and becomes empty.
func (s *Simulation) Harvest(p Pos) bool {
	if s.gameOver || !s.Harvestable(p) {
		return false
	}
	cell := s.grid.CellAt(p)
	spec, _ := s.cfg.Crop(string(cell.Crop.Kind))

	s.econ.Money += spec.HarvestReward
	s.econ.Harvested++
	cell.Crop = nil
	s.checkGameOver()
	return true
}

// ApplyPesticide removes every agent attacking the crop at p for a single
// pesticide charge.
func (s *Simulation) ApplyPesticide(p Pos) bool {
	if s.gameOver || !s.Targeted(p) || s.econ.Money < s.cfg.Economy.PesticideCost {
		return false
	}
	removed := s.director.removeTargeting(s.grid, p)
	if removed == 0 {
		return false
	}
	s.econ.Money -= s.cfg.Economy.PesticideCost
	s.econ.Eliminated += removed
	s.checkGameOver()
	return true
}

// SelectCropKind sets the kind used by Apply when planting. Unknown kinds
// are stored as-is; planting them is rejected. The selection is cosmetic,
// so it is also allowed after game over.
func (s *Simulation) SelectCropKind(kind CropKind) {
	s.econ.SelectedKind = kind
}

// SelectAction sets the tool used by Apply. Like SelectCropKind it is
// allowed after game over.
func (s *Simulation) SelectAction(a Action) {
	s.econ.SelectedAction = a
}

// Apply performs the selected action at p.
func (s *Simulation) Apply(p Pos) bool {
	switch s.econ.SelectedAction {
	case ActionPlant:
		return s.Plant(p, s.econ.SelectedKind)
	case ActionHarvest:
		return s.Harvest(p)
	case ActionPesticide:
		return s.ApplyPesticide(p)
	default:
		return false
	}
}

// SpawnAgent attaches a new agent to the crop at p, as if the director had
// picked it. Used by scripted scenarios. The same rules apply as for a
// regular spawn: the crop must be vulnerable, alive and unattacked, and the
// population must be below the cap. The spawn timer is untouched.
func (s *Simulation) SpawnAgent(p Pos) bool {
	if s.gameOver {
		return false
	}
	cell := s.grid.CellAt(p)
	if !s.attackable(cell, nil) || s.director.Live() >= s.director.Cap() {
		return false
	}
	s.director.spawn(cell)
	return true
}
