package farm

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-farm/internal/config"
)

func TestDirectorCap(t *testing.T) {
	reference := config.DefaultFarmConfig()
	classic := config.DefaultClassicConfig()

	tests := []struct {
		name     string
		cfg      config.FarmConfig
		consumed int
		want     int
	}{
		{"reference start", reference, 0, 2},
		{"reference one", reference, 1, 2},
		{"reference two", reference, 2, 3},
		{"reference five", reference, 5, 4},
		{"reference at max", reference, 16, 10},
		{"reference beyond max", reference, 40, 10},
		{"classic start", classic, 0, 1},
		{"classic unbounded", classic, 100, 51},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDirector(tt.cfg, rand.New(rand.NewSource(1)))
			d.consumed = tt.consumed
			if got := d.Cap(); got != tt.want {
				t.Errorf("Cap() with %d consumed = %d, want %d", tt.consumed, got, tt.want)
			}
		})
	}
}

func TestDirectorCapMonotonic(t *testing.T) {
	d := newDirector(config.DefaultFarmConfig(), rand.New(rand.NewSource(1)))
	prev := d.Cap()
	for i := 0; i < 50; i++ {
		d.consumed++
		if c := d.Cap(); c < prev {
			t.Fatalf("cap decreased from %d to %d", prev, c)
		}
		prev = d.Cap()
	}
}

func TestDirectorVulnerablePick(t *testing.T) {
	cfg := config.DefaultFarmConfig()

	d := newDirector(cfg, rand.New(rand.NewSource(3)))
	kinds := d.VulnerableKinds()
	if len(kinds) != 1 {
		t.Fatalf("expected one vulnerable kind, got %v", kinds)
	}
	if _, ok := cfg.Crop(string(kinds[0])); !ok {
		t.Errorf("vulnerable kind %q not in catalog", kinds[0])
	}

	again := newDirector(cfg, rand.New(rand.NewSource(3)))
	if again.VulnerableKinds()[0] != kinds[0] {
		t.Error("vulnerable pick should be deterministic for a seed")
	}

	cfg.Plague.VulnerableCount = 2
	both := newDirector(cfg, rand.New(rand.NewSource(3)))
	if !both.Vulnerable("carrot") || !both.Vulnerable("potato") {
		t.Errorf("expected both kinds vulnerable, got %v", both.VulnerableKinds())
	}
}

func TestDirectorExplicitVulnerableKinds(t *testing.T) {
	d := newDirector(config.DefaultClassicConfig(), rand.New(rand.NewSource(1)))
	if !d.Vulnerable("carrot") || d.Vulnerable("potato") {
		t.Errorf("expected only carrot vulnerable, got %v", d.VulnerableKinds())
	}
}

func TestSpawnAfterCooldown(t *testing.T) {
	cfg := testConfig()
	cfg.Plague.SpawnCooldown = 5
	s := newTestSim(t, cfg)
	mustPlant(t, s, P(3, 3), "carrot")

	for i := 1; i <= 4; i++ {
		if res := s.Tick(1); res.Count(EventSpawned) != 0 {
			t.Fatalf("spawned after %ds, cooldown is 5s", i)
		}
	}
	res := s.Tick(1)
	if res.Count(EventSpawned) != 1 {
		t.Fatalf("expected spawn at 5s, got %v", res.Events)
	}
	snap := s.Snapshot()
	if _, ok := snap.AgentAt(P(3, 3)); !ok {
		t.Error("first agent should land on the only vulnerable crop")
	}
	if snap.Director.SpawnTimer != 0 {
		t.Errorf("timer should reset after a spawn, got %g", snap.Director.SpawnTimer)
	}
}

func TestSpawnTimerResetsWithoutCandidates(t *testing.T) {
	cfg := testConfig()
	cfg.Plague.SpawnCooldown = 5
	s := newTestSim(t, cfg)
	mustPlant(t, s, P(0, 0), "potato")

	for i := 0; i < 5; i++ {
		s.Tick(1)
	}
	snap := s.Snapshot()
	if snap.Director.Live != 0 {
		t.Errorf("potatoes are not vulnerable, got %d agents", snap.Director.Live)
	}
	if snap.Director.SpawnTimer != 0 {
		t.Errorf("timer should reset after a failed attempt, got %g", snap.Director.SpawnTimer)
	}
}

func TestSpawnContagion(t *testing.T) {
	cfg := testConfig()
	cfg.Plague.SpawnCooldown = 1
	cfg.Plague.BaseDamage = 0
	s := newTestSim(t, cfg)

	mustPlant(t, s, P(0, 0), "carrot")
	mustPlant(t, s, P(0, 1), "carrot")
	mustPlant(t, s, P(4, 4), "carrot")
	mustSpawn(t, s, P(0, 0))

	res := s.Tick(1)
	if res.Count(EventSpawned) != 1 {
		t.Fatalf("expected a spawn, got %v", res.Events)
	}
	snap := s.Snapshot()
	if _, ok := snap.AgentAt(P(0, 1)); !ok {
		t.Error("second agent must spread to a crop next to the infestation")
	}
	if _, ok := snap.AgentAt(P(4, 4)); ok {
		t.Error("second agent must not land far from the infestation")
	}
}

func TestSpawnContagionNoAdjacentCandidate(t *testing.T) {
	cfg := testConfig()
	cfg.Plague.SpawnCooldown = 1
	cfg.Plague.BaseDamage = 0
	s := newTestSim(t, cfg)

	mustPlant(t, s, P(0, 0), "carrot")
	mustPlant(t, s, P(4, 4), "carrot")
	mustSpawn(t, s, P(0, 0))

	res := s.Tick(1)
	if res.Count(EventSpawned) != 0 {
		t.Errorf("no crop next to the infestation, expected no spawn, got %v", res.Events)
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	cfg := testConfig()
	cfg.Plague.SpawnCooldown = 1
	cfg.Plague.BaseDamage = 0
	s := newTestSim(t, cfg)

	for c := 0; c < 5; c++ {
		mustPlant(t, s, P(0, c), "carrot")
	}
	for i := 0; i < 10; i++ {
		s.Tick(1)
		snap := s.Snapshot()
		if snap.Director.Live > snap.Director.Cap {
			t.Fatalf("live %d exceeds cap %d", snap.Director.Live, snap.Director.Cap)
		}
	}
	if got := s.Snapshot().Director.Live; got != 2 {
		t.Errorf("expected population to fill the cap of 2, got %d", got)
	}
	if s.SpawnAgent(P(0, 4)) {
		t.Error("SpawnAgent accepted at the cap")
	}
}

func TestCapInvariantLongRun(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := config.DefaultFarmConfig()
		cfg.Plague.SpawnCooldown = 1
		s, err := New(cfg, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		rng := rand.New(rand.NewSource(seed * 100))
		for i := 0; i < 400; i++ {
			p := P(rng.Intn(5), rng.Intn(5))
			switch rng.Intn(4) {
			case 0:
				s.Plant(p, "carrot")
			case 1:
				s.Plant(p, "potato")
			case 2:
				s.Harvest(p)
			}
			s.Tick(0.5)

			snap := s.Snapshot()
			if snap.Director.Live > snap.Director.Cap {
				t.Fatalf("seed %d tick %d: live %d exceeds cap %d", seed, i, snap.Director.Live, snap.Director.Cap)
			}
			seen := make(map[Pos]bool)
			for _, a := range snap.Agents {
				if seen[a.Pos] {
					t.Fatalf("seed %d tick %d: two agents on %s", seed, i, a.Pos)
				}
				seen[a.Pos] = true
			}
			for _, c := range snap.Cells {
				if c.Crop != nil && !c.Alive {
					t.Fatalf("seed %d tick %d: crop in dead cell %s", seed, i, c.Pos)
				}
			}
		}
	}
}
