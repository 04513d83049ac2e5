package farm

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-farm/internal/config"
)

func carrotSpec() config.CropConfig {
	return config.CropConfig{
		Kind:           "carrot",
		Name:           "Carrot",
		StageDurations: []float64{5, 5, 5},
		PlantingCost:   20,
		HarvestReward:  35,
		MaxHP:          100,
	}
}

func TestStageNextSaturates(t *testing.T) {
	tests := []struct {
		in, want Stage
	}{
		{StageSeedling, StageGrowing},
		{StageGrowing, StageMature},
		{StageMature, StageReady},
		{StageReady, StageReady},
	}
	for _, tt := range tests {
		if got := tt.in.Next(); got != tt.want {
			t.Errorf("%s.Next() = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCropGrowTimeGated(t *testing.T) {
	c := newCrop(1, carrotSpec(), 0)

	if c.Grow(4.9, carrotSpec()) {
		t.Error("crop grew before its stage duration elapsed")
	}
	if !c.Grow(5, carrotSpec()) {
		t.Fatal("crop should grow once the duration elapsed")
	}
	if c.Stage != StageGrowing {
		t.Errorf("expected Growing, got %s", c.Stage)
	}
	if c.StageStart != 5 {
		t.Errorf("expected stage start 5, got %g", c.StageStart)
	}
}

func TestCropGrowNoCatchUp(t *testing.T) {
	c := newCrop(1, carrotSpec(), 0)

	// 100 seconds covers every stage, but only one advance happens.
	if !c.Grow(100, carrotSpec()) {
		t.Fatal("expected growth")
	}
	if c.Stage != StageGrowing {
		t.Fatalf("expected exactly one stage advance, got %s", c.Stage)
	}
	if c.Grow(100, carrotSpec()) {
		t.Error("stage timer should restart at the advance")
	}
	if !c.Grow(105, carrotSpec()) || c.Stage != StageMature {
		t.Errorf("expected Mature at 105, got %s", c.Stage)
	}
}

func TestCropGrowStopsAtReady(t *testing.T) {
	c := newCrop(1, carrotSpec(), 0)
	c.Stage = StageReady

	if c.Grow(1000, carrotSpec()) {
		t.Error("Ready crop should not grow")
	}
	if c.Stage != StageReady {
		t.Errorf("expected Ready, got %s", c.Stage)
	}
}

func TestCropGrowZeroDurations(t *testing.T) {
	spec := carrotSpec()
	spec.StageDurations = []float64{0, 0, 0}
	c := newCrop(1, spec, 0)

	for want := StageGrowing; want <= StageReady; want++ {
		c.Grow(0, spec)
		if c.Stage != want {
			t.Fatalf("expected %s, got %s", want, c.Stage)
		}
	}
}

func TestCropTakeDamage(t *testing.T) {
	c := newCrop(1, carrotSpec(), 0)

	if c.TakeDamage(30) {
		t.Error("crop should survive 30 damage")
	}
	if c.HP != 70 {
		t.Errorf("expected hp 70, got %g", c.HP)
	}
	if !c.TakeDamage(80) {
		t.Error("crop should die from 80 more damage")
	}
	if c.HP != 0 {
		t.Errorf("hp should clamp at 0, got %g", c.HP)
	}
	if c.Alive() {
		t.Error("crop with 0 hp is not alive")
	}
}

func TestCropDeadDoesNotGrow(t *testing.T) {
	c := newCrop(1, carrotSpec(), 0)
	c.TakeDamage(100)

	if c.Grow(10, carrotSpec()) {
		t.Error("dead crop should not grow")
	}
}

func TestCropProgress(t *testing.T) {
	c := newCrop(1, carrotSpec(), 0)

	tests := []struct {
		now  float64
		want float64
	}{
		{0, 0},
		{2.5, 0.5},
		{5, 1},
		{50, 1},
	}
	for _, tt := range tests {
		if got := c.Progress(tt.now, carrotSpec()); got != tt.want {
			t.Errorf("Progress(%g) = %g, want %g", tt.now, got, tt.want)
		}
	}

	c.Stage = StageReady
	if got := c.Progress(0, carrotSpec()); got != 1 {
		t.Errorf("Ready crop progress = %g, want 1", got)
	}
}

func TestCropStagesMonotonicUnderRandomTicks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	spec := carrotSpec()
	spec.StageDurations = []float64{0.5, 1.5, 0.25}
	c := newCrop(1, spec, 0)

	now := 0.0
	prev := c.Stage
	for i := 0; i < 2000; i++ {
		now += rng.Float64() * 3
		c.Grow(now, spec)
		if c.Stage < prev {
			t.Fatalf("stage moved backward: %s -> %s", prev, c.Stage)
		}
		if c.Stage-prev > 1 {
			t.Fatalf("stage skipped: %s -> %s", prev, c.Stage)
		}
		prev = c.Stage
	}
	if c.Stage != StageReady {
		t.Errorf("expected crop to reach Ready, got %s", c.Stage)
	}
}
