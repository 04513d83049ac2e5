package farm

import (
	"testing"

	"github.com/vovakirdan/tui-farm/internal/config"
)

// readyCarrot plants a carrot at p and grows it to Ready.
func readyCarrot(t *testing.T, s *Simulation, p Pos) {
	t.Helper()
	mustPlant(t, s, p, "carrot")
	for i := 0; i < 3; i++ {
		s.Tick(5)
	}
	cell, _ := s.Snapshot().Cell(p)
	if cell.Crop == nil || cell.Crop.Stage != StageReady {
		t.Fatalf("carrot at %s did not reach Ready", p)
	}
}

func TestPlantRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Simulation)
		pos   Pos
		kind  CropKind
	}{
		{"out of bounds", func(*Simulation) {}, P(9, 9), "carrot"},
		{"unknown kind", func(*Simulation) {}, P(0, 0), "turnip"},
		{"occupied", func(s *Simulation) { s.Plant(P(0, 0), "potato") }, P(0, 0), "carrot"},
		{"dead cell", func(s *Simulation) { s.grid.CellAt(P(0, 0)).Alive = false }, P(0, 0), "carrot"},
		{"not enough money", func(s *Simulation) { s.econ.Money = 19 }, P(0, 0), "carrot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, testConfig())
			tt.setup(s)
			before := s.Snapshot()

			if s.Plant(tt.pos, tt.kind) {
				t.Fatal("Plant should be rejected")
			}
			after := s.Snapshot()
			if after.Economy != before.Economy {
				t.Errorf("rejected Plant changed economy: %+v -> %+v", before.Economy, after.Economy)
			}
			cb, _ := before.Cell(P(0, 0))
			ca, _ := after.Cell(P(0, 0))
			if (cb.Crop == nil) != (ca.Crop == nil) {
				t.Error("rejected Plant changed the cell")
			}
		})
	}
}

func TestPlantExactMoney(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 20
	s := newTestSim(t, cfg)

	mustPlant(t, s, P(0, 0), "carrot")
	if s.Economy().Money != 0 {
		t.Errorf("expected money 0, got %d", s.Economy().Money)
	}
}

func TestHarvestRejectsUnripe(t *testing.T) {
	s := newTestSim(t, testConfig())
	mustPlant(t, s, P(0, 0), "carrot")
	s.Tick(5)

	if s.Harvest(P(0, 0)) {
		t.Error("Harvest accepted a Growing crop")
	}
	if s.Harvest(P(1, 1)) {
		t.Error("Harvest accepted an empty cell")
	}
	if s.Economy().Harvested != 0 {
		t.Error("rejected harvest changed counters")
	}
}

func TestHarvestPotatoReward(t *testing.T) {
	s := newTestSim(t, testConfig())
	mustPlant(t, s, P(0, 0), "potato")
	for i := 0; i < 3; i++ {
		s.Tick(6)
	}
	if !s.Harvest(P(0, 0)) {
		t.Fatal("Harvest rejected a Ready potato")
	}
	// 250 - 25 + 45
	if s.Economy().Money != 270 {
		t.Errorf("expected money 270, got %d", s.Economy().Money)
	}
}

func TestHarvestBlockedWhileTargeted(t *testing.T) {
	cfg := testConfig()
	cfg.Plague.BaseDamage = 0
	s := newTestSim(t, cfg)
	readyCarrot(t, s, P(0, 0))
	mustSpawn(t, s, P(0, 0))

	money := s.Economy().Money
	if s.Harvest(P(0, 0)) {
		t.Fatal("Harvest accepted a crop under attack")
	}
	if s.Economy().Money != money {
		t.Error("rejected harvest changed money")
	}
	cell, _ := s.Snapshot().Cell(P(0, 0))
	if cell.Crop.Harvestable || !cell.Crop.Targeted {
		t.Errorf("crop under attack should be targeted and not harvestable, got %+v", cell.Crop)
	}

	if !s.ApplyPesticide(P(0, 0)) {
		t.Fatal("ApplyPesticide rejected")
	}
	if s.Economy().Money != money-30 {
		t.Errorf("expected pesticide to cost 30, money %d -> %d", money, s.Economy().Money)
	}
	if s.Economy().Eliminated != 1 {
		t.Errorf("expected 1 eliminated, got %d", s.Economy().Eliminated)
	}
	if !s.Harvest(P(0, 0)) {
		t.Error("Harvest should succeed once the agent is gone")
	}
}

func TestPesticideRejections(t *testing.T) {
	cfg := testConfig()
	cfg.Plague.BaseDamage = 0
	s := newTestSim(t, cfg)
	mustPlant(t, s, P(0, 0), "carrot")

	if s.ApplyPesticide(P(0, 0)) {
		t.Error("pesticide accepted on a crop with no agent")
	}
	if s.ApplyPesticide(P(3, 3)) {
		t.Error("pesticide accepted on an empty cell")
	}

	mustSpawn(t, s, P(0, 0))
	s.econ.Money = 29
	if s.ApplyPesticide(P(0, 0)) {
		t.Error("pesticide accepted without enough money")
	}
	if s.Economy().Money != 29 || s.Economy().Eliminated != 0 {
		t.Error("rejected pesticide changed the economy")
	}
	if len(s.Snapshot().Agents) != 1 {
		t.Error("rejected pesticide removed the agent")
	}
}

func TestApplyUsesSelection(t *testing.T) {
	cfg := testConfig()
	cfg.Plague.BaseDamage = 0
	s := newTestSim(t, cfg)

	s.SelectAction(ActionPlant)
	s.SelectCropKind("potato")
	if !s.Apply(P(1, 1)) {
		t.Fatal("Apply(plant) rejected")
	}
	cell, _ := s.Snapshot().Cell(P(1, 1))
	if cell.Crop == nil || cell.Crop.Kind != "potato" {
		t.Errorf("expected potato at (1,1), got %+v", cell.Crop)
	}

	s.SelectCropKind("turnip")
	if s.Economy().SelectedKind != "turnip" {
		t.Error("selection should store unknown kinds")
	}
	if s.Apply(P(2, 2)) {
		t.Error("planting an unknown kind should be rejected")
	}

	s.SelectCropKind("carrot")
	s.Apply(P(0, 0))
	mustSpawn(t, s, P(0, 0))
	s.SelectAction(ActionPesticide)
	if !s.Apply(P(0, 0)) {
		t.Error("Apply(pesticide) rejected")
	}

	s.SelectAction(ActionHarvest)
	if s.Apply(P(1, 1)) {
		t.Error("Apply(harvest) accepted a Seedling")
	}
}

func TestSelectionAfterGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Economy.StartingMoney = 10
	s := newTestSim(t, cfg)

	s.Tick(0.1)
	if !s.GameOver() {
		t.Fatal("expected game over with money below the cheapest crop")
	}

	s.SelectCropKind("potato")
	s.SelectAction(ActionHarvest)
	econ := s.Economy()
	if econ.SelectedKind != "potato" || econ.SelectedAction != ActionHarvest {
		t.Errorf("selection not stored after game over: %+v", econ)
	}
	if econ.Money != 10 || !s.GameOver() {
		t.Error("selecting must not change money or end state")
	}
	if s.Apply(P(0, 0)) {
		t.Error("Apply must stay rejected after game over")
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
		ok   bool
	}{
		{"plant", ActionPlant, true},
		{"harvest", ActionHarvest, true},
		{"pesticide", ActionPesticide, true},
		{"cure", ActionPesticide, true},
		{"water", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseAction(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseAction(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClassicVariantBalance(t *testing.T) {
	s := newTestSim(t, config.DefaultClassicConfig())

	if s.Economy().Money != 100 {
		t.Errorf("expected classic money 100, got %d", s.Economy().Money)
	}
	mustPlant(t, s, P(0, 0), "carrot")
	if s.Economy().Money != 90 {
		t.Errorf("expected classic carrot cost 10, money %d", s.Economy().Money)
	}
	if !s.SpawnAgent(P(0, 0)) {
		t.Fatal("carrot should be vulnerable in the classic variant")
	}
	if s.SpawnAgent(P(0, 0)) {
		t.Error("two agents on one crop")
	}
}
