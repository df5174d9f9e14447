// Package effect — движок статус-эффектов: горение, замедление и оглушение.
// Набор эффектов закрыт, поэтому это размеченное объединение с диспетчеризацией
// через switch, а не иерархия интерфейсов.
package effect

import (
	"math"
	"strings"
)

// Kind — тип эффекта.
type Kind int

const (
	Burn Kind = iota
	Slow
	Shock
)

// kinds fixes the update order.
var kinds = [...]Kind{Burn, Slow, Shock}

func (k Kind) String() string {
	switch k {
	case Burn:
		return "BURN"
	case Slow:
		return "SLOW"
	case Shock:
		return "SHOCK"
	default:
		return "UNKNOWN"
	}
}

// ParseKind converts a definition string (BURN, SLOW, SHOCK) to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BURN":
		return Burn, true
	case "SLOW":
		return Slow, true
	case "SHOCK":
		return Shock, true
	}
	return 0, false
}

// Mode — политика повторного наложения эффекта того же типа.
type Mode int

const (
	ModeRefresh Mode = iota // оставшееся время = max(текущее, новое)
	ModeStack               // +1 стак до MaxStacks, время = max
	ModeExtend              // оставшееся время += новое
)

func (m Mode) String() string {
	switch m {
	case ModeRefresh:
		return "REFRESH"
	case ModeStack:
		return "STACK"
	case ModeExtend:
		return "EXTEND"
	default:
		return "UNKNOWN"
	}
}

// ModeOf returns the application mode fixed for a kind.
func ModeOf(k Kind) Mode {
	if k == Burn {
		return ModeStack
	}
	return ModeRefresh
}

const (
	// BurnTickInterval — период урона от горения.
	BurnTickInterval = 0.5
	// BurnMaxStacks caps burn stacking.
	BurnMaxStacks = 5
)

// Effect — один живой экземпляр эффекта на сущности.
//
// Strength зависит от типа: урон в секунду за стак для Burn, доля
// замедления [0,1] для Slow, для Shock не используется в расчетах.
type Effect struct {
	Kind      Kind
	Mode      Mode
	Duration  float64
	Remaining float64
	Stacks    int
	MaxStacks int
	Strength  float64

	tickTimer float64
}

func newEffect(kind Kind, duration, strength float64) *Effect {
	e := &Effect{
		Kind:      kind,
		Mode:      ModeOf(kind),
		Duration:  duration,
		Remaining: duration,
		Stacks:    1,
		MaxStacks: 1,
		Strength:  strength,
	}
	if kind == Burn {
		e.MaxStacks = BurnMaxStacks
	}
	if kind == Slow {
		e.Strength = clamp01(strength)
	}
	return e
}

// reapply applies the mode-specific reapplication rules and reports whether
// the stack count changed.
func (e *Effect) reapply(duration, strength float64) bool {
	stacksChanged := false
	switch e.Mode {
	case ModeStack:
		if e.Stacks < e.MaxStacks {
			e.Stacks++
			stacksChanged = true
		}
		e.Remaining = math.Max(e.Remaining, duration)
		e.Duration = math.Max(e.Duration, duration)
		e.Strength = math.Max(e.Strength, strength)
	case ModeRefresh:
		e.Remaining = math.Max(e.Remaining, duration)
		e.Duration = math.Max(e.Duration, duration)
		if e.Kind == Shock {
			// Оглушение перезапускается безусловно.
			e.Strength = strength
		} else {
			e.Strength = math.Max(e.Strength, clamp01(strength))
		}
	case ModeExtend:
		e.Remaining += duration
		e.Duration = math.Max(e.Duration, e.Remaining)
		e.Strength = math.Max(e.Strength, strength)
	}
	return stacksChanged
}

// TickDamage returns the damage one burn tick deals with the current stacks.
func (e *Effect) TickDamage() int {
	return int(math.Ceil(e.Strength * BurnTickInterval * float64(e.Stacks)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
