// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	WorldScale   = 18.0 // пикселей на единицу мира в отладочном виде сверху

	// Геометрия прицеливания
	TowerPivotHeight = 1.0 // высота оси вращения башни
	EnemyAimHeight   = 1.0 // точка прицеливания по врагу над землей
	EnemyHeight      = 2.0 // высота "цилиндра" врага для попаданий

	// Зона непрерывного урона
	DefaultZoneTickInterval = 0.25

	// Волны
	DefaultWavePollInterval = 0.5

	// Множитель навыков типа REDUCTION ограничен сверху
	MaxReductionPercent = 90.0

	DamageFlashDuration = 0.12
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GroundGridColor  = color.RGBA{40, 45, 60, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{255, 255, 0, 60}
	TargetLineColor  = color.RGBA{255, 80, 80, 200}
	DamageFlashColor = color.RGBA{255, 255, 255, 255}
	SpawnPointColor  = color.RGBA{255, 0, 0, 160}
	ZoneColor        = color.RGBA{255, 140, 40, 90}
	HealthBarColor   = color.RGBA{50, 205, 50, 255}
	HealthBackColor  = color.RGBA{90, 20, 20, 255}

	AbilityStateColors = map[string]color.RGBA{
		"LOCKED":   {80, 80, 80, 255},
		"READY":    {70, 200, 90, 255},
		"ACTIVE":   {255, 200, 40, 255},
		"COOLDOWN": {70, 130, 180, 255},
	}
)
