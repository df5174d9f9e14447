package system

import (
	"log"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/event"
)

// AbilityState — состояние способности.
type AbilityState int

const (
	AbilityLocked AbilityState = iota
	AbilityReady
	AbilityActive
	AbilityCooldown
)

func (s AbilityState) String() string {
	switch s {
	case AbilityLocked:
		return "LOCKED"
	case AbilityReady:
		return "READY"
	case AbilityActive:
		return "ACTIVE"
	case AbilityCooldown:
		return "COOLDOWN"
	default:
		return "UNKNOWN"
	}
}

// ActivateResult — причина, по которой активация не состоялась.
type ActivateResult int

const (
	ActivateOK ActivateResult = iota
	ActivateNotFound
	ActivateLocked
	ActivateNotReady
	ActivateOtherActive
	ActivateMissingData
)

func (r ActivateResult) String() string {
	switch r {
	case ActivateOK:
		return "ok"
	case ActivateNotFound:
		return "not found"
	case ActivateLocked:
		return "locked"
	case ActivateNotReady:
		return "not ready"
	case ActivateOtherActive:
		return "another ability is active"
	case ActivateMissingData:
		return "missing data"
	default:
		return "unknown"
	}
}

// Ability — временная альтернативная конфигурация башни.
type Ability struct {
	ID     string // ID башни-источника
	Name   string
	Hotkey string
	State  AbilityState

	Duration          float64
	Cooldown          float64
	DurationRemaining float64
	CooldownRemaining float64

	def defs.TowerData
}

// AbilitySystem — автомат способностей. Активной может быть только одна.
type AbilitySystem struct {
	ctx      *Context
	towers   *TowerSystem
	zones    *ZoneSystem
	pipeline *StatPipeline

	abilities []*Ability
	byID      map[string]*Ability
	active    *Ability
	snapshot  component.TowerConfig
}

// NewAbilitySystem строит способности из всех башен с блоком ability.
// unlocked решает начальное состояние: Ready или Locked.
func NewAbilitySystem(ctx *Context, towers *TowerSystem, zones *ZoneSystem, pipeline *StatPipeline, unlocked func(id string) bool) *AbilitySystem {
	s := &AbilitySystem{
		ctx:      ctx,
		towers:   towers,
		zones:    zones,
		pipeline: pipeline,
		byID:     make(map[string]*Ability),
	}
	for _, def := range ctx.Defs.AbilityTowers() {
		duration, cooldown := pipeline.AbilityTiming(*def.Ability)
		a := &Ability{
			ID:       def.ID,
			Name:     def.Name,
			Hotkey:   def.Ability.Hotkey,
			State:    AbilityLocked,
			Duration: duration,
			Cooldown: cooldown,
			def:      def,
		}
		if unlocked != nil && unlocked(def.ID) {
			a.State = AbilityReady
		}
		s.abilities = append(s.abilities, a)
		s.byID[def.ID] = a
	}
	ctx.Events.Subscribe(event.TowerUnlocked, s)
	return s
}

// OnEvent открывает способность, когда прогрессия открыла башню.
func (s *AbilitySystem) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.ProgressionData); ok && e.Type == event.TowerUnlocked {
		s.Unlock(data.ID)
	}
}

// Update отсчитывает длительность и перезарядку. Таймеры не уходят ниже нуля.
func (s *AbilitySystem) Update(deltaTime float64) {
	for _, a := range s.abilities {
		switch a.State {
		case AbilityActive:
			a.DurationRemaining -= deltaTime
			if a.DurationRemaining <= timerEpsilon {
				a.DurationRemaining = 0
				s.deactivate(a, true)
			}
		case AbilityCooldown:
			a.CooldownRemaining -= deltaTime
			if a.CooldownRemaining <= timerEpsilon {
				s.finishCooldown(a)
			}
		}
	}
}

// Activate переводит способность Ready -> Active.
func (s *AbilitySystem) Activate(id string) ActivateResult {
	a, ok := s.byID[id]
	if !ok {
		return ActivateNotFound
	}
	switch a.State {
	case AbilityLocked:
		return ActivateLocked
	case AbilityReady:
	default:
		return ActivateNotReady
	}
	if s.active != nil {
		return ActivateOtherActive
	}
	if s.ctx.World.Tower == nil {
		log.Printf("AbilitySystem: no tower to reconfigure for %s", id)
		return ActivateMissingData
	}
	cfg, ok := s.pipeline.TowerConfig(a.def)
	if !ok {
		return ActivateMissingData
	}

	s.snapshot = s.towers.Snapshot()
	s.towers.ApplyConfig(cfg)
	s.towers.OverrideStats(cfg.Stats)
	if cfg.Continuous != nil {
		s.zones.Start(*cfg.Continuous, a.ID)
	}

	s.active = a
	a.State = AbilityActive
	a.DurationRemaining = a.Duration
	log.Printf("AbilitySystem: %s activated for %.1fs", a.ID, a.Duration)
	s.ctx.Events.Emit(event.TowerVisualChanged, event.AbilityData{AbilityID: a.ID, Visual: cfg.Visual})
	s.ctx.Events.Emit(event.AbilityActivated, event.AbilityData{AbilityID: a.ID, Visual: cfg.Visual})
	return ActivateOK
}

// Deactivate досрочно завершает активную способность и запускает перезарядку.
func (s *AbilitySystem) Deactivate(id string) bool {
	a, ok := s.byID[id]
	if !ok || a.State != AbilityActive {
		return false
	}
	s.deactivate(a, true)
	return true
}

// Lock блокирует способность. Активная снимается без перезарядки.
func (s *AbilitySystem) Lock(id string) bool {
	a, ok := s.byID[id]
	if !ok || a.State == AbilityLocked {
		return false
	}
	if a.State == AbilityActive {
		s.deactivate(a, false)
	}
	a.State = AbilityLocked
	a.DurationRemaining = 0
	a.CooldownRemaining = 0
	s.ctx.Events.Emit(event.AbilityLocked, event.AbilityData{AbilityID: a.ID})
	return true
}

// Unlock переводит Locked -> Ready.
func (s *AbilitySystem) Unlock(id string) bool {
	a, ok := s.byID[id]
	if !ok || a.State != AbilityLocked {
		return false
	}
	a.State = AbilityReady
	s.ctx.Events.Emit(event.AbilityUnlocked, event.AbilityData{AbilityID: a.ID})
	return true
}

// HandleHotkeys обрабатывает ввод игрока. Вызывается после Update в том же кадре.
// Повторное нажатие клавиши активной способности отменяет ее.
func (s *AbilitySystem) HandleHotkeys(pressed func(hotkey string) bool) {
	for _, a := range s.abilities {
		if a.Hotkey == "" || !pressed(a.Hotkey) {
			continue
		}
		if a.State == AbilityActive {
			s.Deactivate(a.ID)
			continue
		}
		if res := s.Activate(a.ID); res != ActivateOK {
			log.Printf("AbilitySystem: %s not activated: %s", a.ID, res)
		}
	}
}

// Abilities returns copies of all abilities in definition order.
func (s *AbilitySystem) Abilities() []Ability {
	out := make([]Ability, len(s.abilities))
	for i, a := range s.abilities {
		out[i] = *a
	}
	return out
}

// Get returns a copy of one ability.
func (s *AbilitySystem) Get(id string) (Ability, bool) {
	a, ok := s.byID[id]
	if !ok {
		return Ability{}, false
	}
	return *a, true
}

// ActiveID returns the id of the active ability, or "".
func (s *AbilitySystem) ActiveID() string {
	if s.active == nil {
		return ""
	}
	return s.active.ID
}

// deactivate восстанавливает снимок башни: пушки, внешний вид, зону, характеристики.
func (s *AbilitySystem) deactivate(a *Ability, startCooldown bool) {
	if s.active == a {
		s.zones.Stop()
		s.towers.ApplyConfig(s.snapshot)
		s.towers.RestoreStats()
		if s.snapshot.Continuous != nil {
			s.zones.Start(*s.snapshot.Continuous, "")
		}
		s.active = nil
		s.snapshot = component.TowerConfig{}
	}
	a.DurationRemaining = 0
	log.Printf("AbilitySystem: %s deactivated", a.ID)
	s.ctx.Events.Emit(event.TowerVisualChanged, event.AbilityData{AbilityID: a.ID, Visual: s.visual()})
	s.ctx.Events.Emit(event.AbilityDeactivated, event.AbilityData{AbilityID: a.ID})

	if !startCooldown {
		return
	}
	a.State = AbilityCooldown
	a.CooldownRemaining = a.Cooldown
	if a.CooldownRemaining <= 0 {
		s.finishCooldown(a)
	}
}

func (s *AbilitySystem) finishCooldown(a *Ability) {
	a.CooldownRemaining = 0
	a.State = AbilityReady
	s.ctx.Events.Emit(event.AbilityCooldownComplete, event.AbilityData{AbilityID: a.ID})
}

func (s *AbilitySystem) visual() string {
	if s.ctx.World.Tower == nil {
		return ""
	}
	return s.ctx.World.Tower.Visual
}
