package progression

import (
	"log"

	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/event"
)

// Service — правила прогрессии поверх Store: покупки, открытие башен,
// прокачка навыков и начисление наград из событий симуляции.
type Service struct {
	store      Store
	db         *defs.Database
	dispatcher *event.Dispatcher
}

// NewService subscribes the service to reward events.
func NewService(store Store, db *defs.Database, dispatcher *event.Dispatcher) *Service {
	s := &Service{store: store, db: db, dispatcher: dispatcher}
	dispatcher.Subscribe(event.EnemyKilled, s)
	dispatcher.Subscribe(event.WaveCompleted, s)
	return s
}

// Store returns the underlying store.
func (s *Service) Store() Store { return s.store }

// IsUnlocked reports whether a tower is available. The base tower always is.
func (s *Service) IsUnlocked(id string) bool {
	if id == s.db.BaseTowerID {
		return true
	}
	return s.store.IsUnlocked(id)
}

// Currency returns the current balance.
func (s *Service) Currency() int { return s.store.Currency() }

// Purchase списывает cost с баланса.
func (s *Service) Purchase(cost int) PurchaseFailReason {
	if cost < 0 {
		return PurchaseInvalidAmount
	}
	if !s.store.SpendCurrency(cost) {
		return PurchaseInsufficientCurrency
	}
	s.emitCurrency()
	return PurchaseOK
}

// TryUnlock открывает башню-способность за валюту.
func (s *Service) TryUnlock(towerID string) UnlockFailReason {
	def, ok := s.db.Tower(towerID)
	if !ok || def.Ability == nil {
		return UnlockUnknownTower
	}
	if s.IsUnlocked(towerID) {
		return UnlockAlreadyUnlocked
	}
	if def.Ability.Prerequisite != "" && !s.IsUnlocked(def.Ability.Prerequisite) {
		return UnlockPrerequisiteLocked
	}
	switch s.Purchase(def.Ability.UnlockCost) {
	case PurchaseOK:
	case PurchaseInvalidAmount:
		log.Printf("Progression: tower %s has invalid unlock cost %d", towerID, def.Ability.UnlockCost)
		return UnlockUnknownTower
	default:
		return UnlockInsufficientCurrency
	}
	s.store.Unlock(towerID)
	s.dispatcher.Emit(event.TowerUnlocked, event.ProgressionData{ID: towerID, Currency: s.store.Currency()})
	return UnlockOK
}

// TryUpgrade поднимает уровень навыка на единицу.
func (s *Service) TryUpgrade(skillID string) UpgradeFailReason {
	skill, ok := s.db.Skills[skillID]
	if !ok {
		return UpgradeUnknownSkill
	}
	level := s.store.CurrentLevel(skillID)
	if level >= skill.MaxLevel {
		return UpgradeMaxLevel
	}
	if skill.Requires != "" && s.store.CurrentLevel(skill.Requires) < 1 {
		return UpgradePrerequisiteMissing
	}
	if s.Purchase(skill.CostForLevel(level+1)) != PurchaseOK {
		return UpgradeInsufficientCurrency
	}
	s.store.SetLevel(skillID, level+1)
	s.dispatcher.Emit(event.SkillUpgraded, event.ProgressionData{ID: skillID, Level: level + 1, Currency: s.store.Currency()})
	return UpgradeOK
}

// Bonuses aggregates the current skill levels.
func (s *Service) Bonuses() Bonuses {
	return AggregateBonuses(s.db.SkillList(), s.store.CurrentLevel)
}

// OnEvent начисляет награды за убийства и завершенные волны.
func (s *Service) OnEvent(e event.Event) {
	var reward int
	switch data := e.Data.(type) {
	case event.EnemyData:
		if e.Type == event.EnemyKilled {
			reward = data.Reward
		}
	case event.WaveData:
		if e.Type == event.WaveCompleted {
			reward = data.Reward
		}
	}
	if reward <= 0 {
		return
	}
	s.store.AddCurrency(reward)
	s.emitCurrency()
}

func (s *Service) emitCurrency() {
	s.dispatcher.Emit(event.CurrencyChanged, event.ProgressionData{Currency: s.store.Currency()})
}
