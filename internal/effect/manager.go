package effect

import (
	"go-lone-tower/internal/event"
	"go-lone-tower/internal/types"
)

// Host — сущность, на которую действуют эффекты.
type Host interface {
	MoveSpeed() float64
	SetMoveSpeed(speed float64)
	TakeDamage(amount int)
}

const tickEpsilon = 1e-9

// Manager хранит не более одного живого эффекта каждого типа для одной сущности.
type Manager struct {
	owner      types.EntityID
	host       Host
	dispatcher *event.Dispatcher
	effects    map[Kind]*Effect

	// Скорость до первого эффекта, влияющего на движение.
	baseline    float64
	hasBaseline bool
	closed      bool
}

// NewManager creates a manager for one entity. dispatcher may be nil.
func NewManager(owner types.EntityID, host Host, dispatcher *event.Dispatcher) *Manager {
	return &Manager{
		owner:      owner,
		host:       host,
		dispatcher: dispatcher,
		effects:    make(map[Kind]*Effect),
	}
}

// Apply накладывает эффект или переналагает существующий по правилам его Mode.
func (m *Manager) Apply(kind Kind, duration, strength float64) {
	if m.closed || duration <= 0 {
		return
	}
	if existing, ok := m.effects[kind]; ok {
		if existing.reapply(duration, strength) {
			m.emit(event.EffectStackChanged, existing)
		}
		if affectsSpeed(kind) {
			// Оглушение обнуляет скорость при каждом наложении.
			m.refreshSpeed()
		}
		return
	}

	e := newEffect(kind, duration, strength)
	m.effects[kind] = e
	if affectsSpeed(kind) && !m.hasBaseline {
		m.baseline = m.host.MoveSpeed()
		m.hasBaseline = true
	}
	m.refreshSpeed()
	m.emit(event.EffectApplied, e)
}

// Has reports whether an effect of kind is live.
func (m *Manager) Has(kind Kind) bool {
	_, ok := m.effects[kind]
	return ok
}

// Get returns a copy of the live effect of kind.
func (m *Manager) Get(kind Kind) (Effect, bool) {
	e, ok := m.effects[kind]
	if !ok {
		return Effect{}, false
	}
	return *e, true
}

// Count returns the number of live effects.
func (m *Manager) Count() int {
	return len(m.effects)
}

// Update отсчитывает время эффектов, наносит урон горения и снимает истекшие.
func (m *Manager) Update(dt float64) {
	for _, kind := range kinds {
		if m.closed {
			return
		}
		e, ok := m.effects[kind]
		if !ok {
			continue
		}
		e.Remaining -= dt
		if kind == Burn {
			e.tickTimer += dt
			for e.tickTimer+tickEpsilon >= BurnTickInterval {
				e.tickTimer -= BurnTickInterval
				m.host.TakeDamage(e.TickDamage())
				if m.closed {
					// Сущность погибла от урона и менеджер уже очищен.
					return
				}
			}
		}
		if e.Remaining <= tickEpsilon {
			e.Remaining = 0
			m.Remove(kind)
		}
	}
}

// Remove снимает эффект и восстанавливает затронутые характеристики.
func (m *Manager) Remove(kind Kind) {
	e, ok := m.effects[kind]
	if !ok {
		return
	}
	delete(m.effects, kind)
	m.refreshSpeed()
	m.emit(event.EffectRemoved, e)
}

// Clear снимает все эффекты и закрывает менеджер. Вызывается при удалении сущности.
func (m *Manager) Clear() {
	if m.closed {
		return
	}
	for _, kind := range kinds {
		m.Remove(kind)
	}
	m.closed = true
}

// refreshSpeed пересчитывает скорость из сохраненного базового значения:
// оглушение дает 0, замедление — baseline*(1-strength), иначе baseline.
// Пока активно замедление, снятие оглушения возвращает скорость замедления,
// а не полную.
func (m *Manager) refreshSpeed() {
	if !m.hasBaseline {
		return
	}
	speed := m.baseline
	if _, stunned := m.effects[Shock]; stunned {
		speed = 0
	} else if slow, slowed := m.effects[Slow]; slowed {
		speed = m.baseline * (1 - slow.Strength)
	}
	m.host.SetMoveSpeed(speed)
	if !m.Has(Shock) && !m.Has(Slow) {
		m.hasBaseline = false
	}
}

func affectsSpeed(kind Kind) bool {
	return kind == Slow || kind == Shock
}

func (m *Manager) emit(t event.EventType, e *Effect) {
	if m.dispatcher == nil {
		return
	}
	m.dispatcher.Emit(t, event.EffectData{
		EntityID:  m.owner,
		Kind:      e.Kind.String(),
		Stacks:    e.Stacks,
		Remaining: e.Remaining,
	})
}
