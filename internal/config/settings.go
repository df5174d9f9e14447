package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings — параметры запуска из переменных окружения.
type Settings struct {
	Seed int64 `env:"TD_SEED" envDefault:"0"`
	// Пусто — встроенные определения.
	DataDir string `env:"TD_DATA_DIR"`
	// Пусто — прогресс хранится в памяти.
	SavePath string `env:"TD_SAVE_PATH"`
	Profile  string `env:"TD_PROFILE" envDefault:"default"`
	// Пусто — трансляция событий выключена.
	FeedAddr string `env:"TD_FEED_ADDR"`
	// Пусто — профилировщик не запускается.
	PprofAddr     string  `env:"TD_PPROF_ADDR"`
	MaxDelta      float64 `env:"TD_MAX_DELTA" envDefault:"0.06"`
	StartFromGame bool    `env:"TD_START_FROM_GAME" envDefault:"true"`
	StartCurrency int     `env:"TD_START_CURRENCY" envDefault:"0"`
	SimSeconds    float64 `env:"TD_SIM_SECONDS" envDefault:"180"`
	SimStep       float64 `env:"TD_SIM_STEP" envDefault:"0.02"`
}

// Load читает Settings из окружения.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.MaxDelta <= 0 {
		s.MaxDelta = MaxDeltaTime
	}
	if s.SimStep <= 0 {
		return Settings{}, fmt.Errorf("TD_SIM_STEP must be positive, got %v", s.SimStep)
	}
	return s, nil
}
