// internal/defs/waves.go
package defs

// SpawnPolicy выбирает точку появления очередного врага.
type SpawnPolicy string

const (
	SpawnRandom     SpawnPolicy = "RANDOM"
	SpawnSequential SpawnPolicy = "SEQUENTIAL"
	SpawnFirstOnly  SpawnPolicy = "FIRST_ONLY"
)

// SpawnPoint — точка на земле, откуда выходят враги.
type SpawnPoint struct {
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Weight int     `json:"weight,omitempty"` // для RANDOM, по умолчанию 1
}

// SpawnGroup describes one batch of identical enemies inside a wave.
type SpawnGroup struct {
	EnemyID       string  `json:"enemy_id"`
	Count         int     `json:"count"`
	SpawnInterval float64 `json:"spawn_interval"`
	GroupDelay    float64 `json:"group_delay"`
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Name       string       `json:"name"`
	StartDelay float64      `json:"start_delay"`
	Groups     []SpawnGroup `json:"groups"`
	Reward     int          `json:"reward"`
}

// WaveSet — весь сценарий волн уровня.
type WaveSet struct {
	Policy           SpawnPolicy      `json:"policy"`
	TimeBetweenWaves float64          `json:"time_between_waves"`
	PollInterval     float64          `json:"poll_interval"`
	SpawnPoints      []SpawnPoint     `json:"spawn_points"`
	Waves            []WaveDefinition `json:"waves"`
}
