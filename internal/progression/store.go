// Package progression хранит постоянный прогресс игрока: валюту, открытые
// башни и уровни навыков. Для симуляции это внешний сотрудник: ядро только
// спрашивает, открыта ли способность, и читает суммарные бонусы навыков.
package progression

// Store — хранилище прогресса одного профиля.
type Store interface {
	IsUnlocked(id string) bool
	CurrentLevel(id string) int
	Currency() int
	// SpendCurrency списывает amount, если хватает средств.
	SpendCurrency(amount int) bool
	AddCurrency(amount int)
	Unlock(id string)
	SetLevel(id string, level int)
}

// MemoryStore keeps progression in memory only.
type MemoryStore struct {
	currency int
	unlocked map[string]bool
	levels   map[string]int
}

func NewMemoryStore(currency int) *MemoryStore {
	return &MemoryStore{
		currency: currency,
		unlocked: make(map[string]bool),
		levels:   make(map[string]int),
	}
}

func (s *MemoryStore) IsUnlocked(id string) bool { return s.unlocked[id] }

func (s *MemoryStore) CurrentLevel(id string) int { return s.levels[id] }

func (s *MemoryStore) Currency() int { return s.currency }

func (s *MemoryStore) SpendCurrency(amount int) bool {
	if amount < 0 || amount > s.currency {
		return false
	}
	s.currency -= amount
	return true
}

func (s *MemoryStore) AddCurrency(amount int) {
	if amount <= 0 {
		return
	}
	s.currency += amount
}

func (s *MemoryStore) Unlock(id string) { s.unlocked[id] = true }

func (s *MemoryStore) SetLevel(id string, level int) {
	if level < 0 {
		level = 0
	}
	s.levels[id] = level
}
