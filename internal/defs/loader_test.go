package defs

import (
	"testing"
	"testing/fstest"
)

func TestLoadDefault(t *testing.T) {
	db, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if _, ok := db.Tower(db.BaseTowerID); !ok {
		t.Fatalf("base tower %q missing", db.BaseTowerID)
	}
	abilities := db.AbilityTowers()
	if len(abilities) == 0 {
		t.Fatal("no ability towers")
	}
	for _, def := range abilities {
		if def.ID == db.BaseTowerID {
			t.Errorf("base tower must not be an ability")
		}
		if def.FireMode == FireProjectile {
			if _, ok := db.Projectile(def.Projectile); !ok {
				t.Errorf("tower %s references missing projectile %s", def.ID, def.Projectile)
			}
		}
	}
	if len(db.Waves.Waves) == 0 || len(db.Waves.SpawnPoints) == 0 {
		t.Error("wave set is empty")
	}
	if got := db.SkillList(); len(got) != len(db.Skills) {
		t.Errorf("SkillList length %d != %d", len(got), len(db.Skills))
	}
}

func TestLoadRejectsMissingBaseTower(t *testing.T) {
	fsys := fstest.MapFS{
		"towers.json":      {Data: []byte(`{"base":"NOPE","towers":[]}`)},
		"projectiles.json": {Data: []byte(`[]`)},
		"enemies.json":     {Data: []byte(`[]`)},
		"waves.json":       {Data: []byte(`{"waves":[]}`)},
		"skills.json":      {Data: []byte(`[]`)},
	}
	if _, err := Load(fsys); err == nil {
		t.Fatal("expected error for missing base tower")
	}
}

func TestLoadReportsBadJSON(t *testing.T) {
	fsys := fstest.MapFS{"towers.json": {Data: []byte(`{`)}}
	if _, err := Load(fsys); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestSkillCostForLevel(t *testing.T) {
	s := SkillDefinition{MaxLevel: 3, Costs: []int{10, 20}}
	tests := map[int]int{0: -1, 1: 10, 2: 20, 3: 20, 4: -1}
	for level, want := range tests {
		if got := s.CostForLevel(level); got != want {
			t.Errorf("CostForLevel(%d) = %d, want %d", level, got, want)
		}
	}
}
