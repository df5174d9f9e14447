package progression

import (
	"math"
	"testing"

	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/event"
)

func newTestService(t *testing.T, currency int) (*Service, *event.Dispatcher) {
	t.Helper()
	db, err := defs.LoadDefault()
	if err != nil {
		t.Fatalf("load defs: %v", err)
	}
	d := event.NewDispatcher()
	return NewService(NewMemoryStore(currency), db, d), d
}

func TestTryUnlockRules(t *testing.T) {
	s, d := newTestService(t, 1000)
	var unlocked []string
	d.SubscribeFunc(event.TowerUnlocked, func(e event.Event) {
		unlocked = append(unlocked, e.Data.(event.ProgressionData).ID)
	})

	tests := []struct {
		id   string
		want UnlockFailReason
	}{
		{"TOWER_NOPE", UnlockUnknownTower},
		{"TOWER_BASIC", UnlockUnknownTower}, // без способности
		{"TOWER_TESLA", UnlockPrerequisiteLocked},
		{"TOWER_FROST", UnlockOK},
		{"TOWER_FROST", UnlockAlreadyUnlocked},
		{"TOWER_TESLA", UnlockOK},
	}
	for _, tt := range tests {
		if got := s.TryUnlock(tt.id); got != tt.want {
			t.Errorf("TryUnlock(%s) = %v, want %v", tt.id, got, tt.want)
		}
	}
	if got := s.Currency(); got != 1000-150-200 {
		t.Errorf("currency = %d, want %d", got, 1000-150-200)
	}
	if len(unlocked) != 2 {
		t.Errorf("TowerUnlocked events = %v, want 2", unlocked)
	}
}

func TestTryUnlockInsufficientCurrency(t *testing.T) {
	s, _ := newTestService(t, 99)
	if got := s.TryUnlock("TOWER_FLAME"); got != UnlockInsufficientCurrency {
		t.Fatalf("got %v, want %v", got, UnlockInsufficientCurrency)
	}
	if s.IsUnlocked("TOWER_FLAME") {
		t.Error("tower unlocked without payment")
	}
	if s.Currency() != 99 {
		t.Errorf("currency changed to %d", s.Currency())
	}
}

func TestBaseTowerAlwaysUnlocked(t *testing.T) {
	s, _ := newTestService(t, 0)
	if !s.IsUnlocked("TOWER_BASIC") {
		t.Error("base tower must be unlocked")
	}
}

func TestTryUpgradeRules(t *testing.T) {
	s, _ := newTestService(t, 10000)

	if got := s.TryUpgrade("SKILL_NOPE"); got != UpgradeUnknownSkill {
		t.Errorf("unknown skill: got %v", got)
	}
	if got := s.TryUpgrade("SKILL_LONG_FUSE"); got != UpgradePrerequisiteMissing {
		t.Errorf("missing prerequisite: got %v", got)
	}
	for i := 0; i < 3; i++ {
		if got := s.TryUpgrade("SKILL_EAGLE_EYE"); got != UpgradeOK {
			t.Fatalf("upgrade %d: got %v", i+1, got)
		}
	}
	if got := s.TryUpgrade("SKILL_EAGLE_EYE"); got != UpgradeMaxLevel {
		t.Errorf("max level: got %v", got)
	}
	if got := s.Currency(); got != 10000-30-60-90 {
		t.Errorf("currency = %d", got)
	}
}

func TestTryUpgradeInsufficientCurrency(t *testing.T) {
	s, _ := newTestService(t, 19)
	if got := s.TryUpgrade("SKILL_SHARP_BOLTS"); got != UpgradeInsufficientCurrency {
		t.Errorf("got %v", got)
	}
	if lvl := s.Store().CurrentLevel("SKILL_SHARP_BOLTS"); lvl != 0 {
		t.Errorf("level = %d, want 0", lvl)
	}
}

func TestPurchase(t *testing.T) {
	s, d := newTestService(t, 50)
	var changes int
	d.SubscribeFunc(event.CurrencyChanged, func(event.Event) { changes++ })

	if got := s.Purchase(-1); got != PurchaseInvalidAmount {
		t.Errorf("negative: got %v", got)
	}
	if got := s.Purchase(60); got != PurchaseInsufficientCurrency {
		t.Errorf("overspend: got %v", got)
	}
	if got := s.Purchase(50); got != PurchaseOK {
		t.Errorf("exact: got %v", got)
	}
	if changes != 1 {
		t.Errorf("CurrencyChanged events = %d, want 1", changes)
	}
}

func TestRewardsFromEvents(t *testing.T) {
	s, d := newTestService(t, 0)
	d.Emit(event.EnemyKilled, event.EnemyData{EntityID: 5, Reward: 7})
	d.Emit(event.EnemyRemoved, event.EnemyData{EntityID: 6, Reward: 100})
	d.Emit(event.WaveCompleted, event.WaveData{Index: 0, Reward: 25})
	if got := s.Currency(); got != 32 {
		t.Errorf("currency = %d, want 32", got)
	}
}

func TestAggregateBonuses(t *testing.T) {
	skills := []defs.SkillDefinition{
		{ID: "P", Stat: defs.StatDamage, Kind: defs.BonusPercent, ValuePerLevel: 10, MaxLevel: 5},
		{ID: "A", Stat: defs.StatDamage, Kind: defs.BonusAdditive, ValuePerLevel: 2, MaxLevel: 5},
		{ID: "R", Stat: defs.StatFireCooldown, Kind: defs.BonusReduction, ValuePerLevel: 40, MaxLevel: 5},
		{ID: "Z", Stat: defs.StatRange, Kind: defs.BonusAdditive, ValuePerLevel: 1, MaxLevel: 5},
	}
	levels := map[string]int{"P": 2, "A": 1, "R": 3, "Z": 0}
	b := AggregateBonuses(skills, func(id string) int { return levels[id] })

	if _, ok := b[defs.StatRange]; ok {
		t.Error("zero-level skill must not contribute")
	}
	// 10 * 1.2 + 2
	if got := b.Apply(defs.StatDamage, 10); math.Abs(got-14) > 1e-9 {
		t.Errorf("damage = %v, want 14", got)
	}
	// 120% снижения ограничено 90%
	if got := b.Apply(defs.StatFireCooldown, 1); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("cooldown = %v, want 0.1", got)
	}
	if got := b.Apply(defs.StatProjectileSpeed, 30); got != 30 {
		t.Errorf("untouched stat = %v, want 30", got)
	}
	if got := b.ApplyInt(defs.StatDamage, 10); got != 14 {
		t.Errorf("ApplyInt = %d, want 14", got)
	}
}

func TestReasonStrings(t *testing.T) {
	if UnlockPrerequisiteLocked.String() != "prerequisite locked" {
		t.Error(UnlockPrerequisiteLocked.String())
	}
	if UpgradeMaxLevel.String() != "max level" {
		t.Error(UpgradeMaxLevel.String())
	}
	if PurchaseInsufficientCurrency.String() != "insufficient currency" {
		t.Error(PurchaseInsufficientCurrency.String())
	}
}
