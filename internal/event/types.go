// internal/event/types.go
package event

import "go-lone-tower/internal/types"

const (
	// Targeting & firing
	TargetAcquired    EventType = "TargetAcquired"
	TargetLost        EventType = "TargetLost"
	ProjectileFired   EventType = "ProjectileFired" // Хук для звука выстрела и вспышки
	ProjectileHit     EventType = "ProjectileHit"   // Хук для эффекта попадания
	ProjectileExpired EventType = "ProjectileExpired"

	// Health
	DamageApplied  EventType = "DamageApplied"
	EnemyKilled    EventType = "EnemyKilled"  // Враг уничтожен, награда начисляется прогрессией
	EnemyRemoved   EventType = "EnemyRemoved" // Враг удален из мира без смерти
	TowerDamaged   EventType = "TowerDamaged"
	TowerDestroyed EventType = "TowerDestroyed"

	// Status effects
	EffectApplied      EventType = "EffectApplied"
	EffectRemoved      EventType = "EffectRemoved"
	EffectStackChanged EventType = "EffectStackChanged"

	// Abilities
	AbilityActivated        EventType = "AbilityActivated"
	AbilityDeactivated      EventType = "AbilityDeactivated"
	AbilityCooldownComplete EventType = "AbilityCooldownComplete"
	AbilityLocked           EventType = "AbilityLocked"
	AbilityUnlocked         EventType = "AbilityUnlocked"
	TowerVisualChanged      EventType = "TowerVisualChanged"
	ZoneVFXStarted          EventType = "ZoneVFXStarted"
	ZoneVFXStopped          EventType = "ZoneVFXStopped"

	// Waves
	WaveStarted       EventType = "WaveStarted"
	EnemySpawned      EventType = "EnemySpawned"
	WaveCompleted     EventType = "WaveCompleted"
	AllWavesCompleted EventType = "AllWavesCompleted"

	// Progression
	CurrencyChanged EventType = "CurrencyChanged"
	TowerUnlocked   EventType = "TowerUnlocked"
	SkillUpgraded   EventType = "SkillUpgraded"

	// Scene
	SceneReloadRequested EventType = "SceneReloadRequested"
)

// TargetData — payload of TargetAcquired / TargetLost.
type TargetData struct {
	TargetID types.EntityID
}

// ShotData — payload of ProjectileFired / ProjectileHit / ProjectileExpired.
type ShotData struct {
	ProjectileID types.EntityID
	TargetID     types.EntityID
	CannonIndex  int
	Damage       int
	X, Y, Z      float64
}

// DamageData — payload of DamageApplied / TowerDamaged.
type DamageData struct {
	EntityID  types.EntityID
	Amount    int
	Remaining int
}

// EnemyData — payload of EnemyKilled / EnemyRemoved / EnemySpawned.
type EnemyData struct {
	EntityID types.EntityID
	DefID    string
	Reward   int
}

// EffectData — payload of effect events.
type EffectData struct {
	EntityID  types.EntityID
	Kind      string
	Stacks    int
	Remaining float64
}

// AbilityData — payload of ability events.
type AbilityData struct {
	AbilityID string
	Visual    string
}

// WaveData — payload of wave events.
type WaveData struct {
	Index  int // с нуля
	Total  int
	Reward int
}

// ProgressionData — payload of progression events.
type ProgressionData struct {
	ID       string
	Level    int
	Currency int
}
