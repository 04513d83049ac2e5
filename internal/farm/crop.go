package farm

import "github.com/vovakirdan/tui-farm/internal/config"

// Stage is a crop growth stage. Stages only move forward.
type Stage int

const (
	StageSeedling Stage = iota
	StageGrowing
	StageMature
	StageReady
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageSeedling:
		return "Seedling"
	case StageGrowing:
		return "Growing"
	case StageMature:
		return "Mature"
	case StageReady:
		return "Ready"
	default:
		return "Unknown"
	}
}

// Next returns the following stage. Ready is terminal.
func (s Stage) Next() Stage {
	if s >= StageReady {
		return StageReady
	}
	return s + 1
}

// CropKind tags a crop with its catalog entry.
type CropKind string

// CropID identifies a crop for the lifetime of a run. IDs are never reused,
// so a stale ID never resolves to a different crop.
type CropID uint64

// Crop is a planted crop. It lives inside exactly one alive Cell.
type Crop struct {
	ID         CropID
	Kind       CropKind
	Stage      Stage
	HP         float64
	MaxHP      float64
	StageStart float64 // Simulation time the current stage began
}

func newCrop(id CropID, spec config.CropConfig, now float64) *Crop {
	return &Crop{
		ID:         id,
		Kind:       CropKind(spec.Kind),
		Stage:      StageSeedling,
		HP:         spec.MaxHP,
		MaxHP:      spec.MaxHP,
		StageStart: now,
	}
}

// stageDuration returns the seconds a crop of this spec spends in stage s.
func stageDuration(spec config.CropConfig, s Stage) float64 {
	i := int(s)
	if i < 0 || i >= len(spec.StageDurations) {
		return 0
	}
	return spec.StageDurations[i]
}

// Grow advances at most one stage when the current stage's duration has
// elapsed. Elapsed time beyond one stage is not carried over: the next stage
// starts counting from now. Returns true if the stage changed.
func (c *Crop) Grow(now float64, spec config.CropConfig) bool {
	if c.HP <= 0 || c.Stage >= StageReady {
		return false
	}
	if now-c.StageStart < stageDuration(spec, c.Stage) {
		return false
	}
	c.Stage = c.Stage.Next()
	c.StageStart = now
	return true
}

// TakeDamage reduces hp, never below zero. Returns true when hp reaches zero.
func (c *Crop) TakeDamage(amount float64) bool {
	if amount > 0 {
		c.HP -= amount
	}
	if c.HP <= 0 {
		c.HP = 0
		return true
	}
	return false
}

// Alive returns true while the crop has hit points left.
func (c *Crop) Alive() bool {
	return c.HP > 0
}

// Progress returns the elapsed fraction of the current stage in [0,1].
// Ready crops report 1.
func (c *Crop) Progress(now float64, spec config.CropConfig) float64 {
	if c.Stage >= StageReady {
		return 1
	}
	d := stageDuration(spec, c.Stage)
	if d <= 0 {
		return 1
	}
	p := (now - c.StageStart) / d
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
