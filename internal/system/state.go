// internal/system/state.go
package system

import (
	"log"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/event"
)

// StateSystem переключает фазу партии по событиям: гибель башни — поражение,
// все волны пройдены — победа. Поражение приоритетнее.
type StateSystem struct {
	ctx *Context
}

func NewStateSystem(ctx *Context) *StateSystem {
	ss := &StateSystem{ctx: ctx}
	ctx.Events.Subscribe(event.TowerDestroyed, ss)
	ctx.Events.Subscribe(event.AllWavesCompleted, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	w := s.ctx.World
	if w.Phase != component.PhasePlaying {
		return
	}
	switch e.Type {
	case event.TowerDestroyed:
		w.Phase = component.PhaseDefeat
	case event.AllWavesCompleted:
		w.Phase = component.PhaseVictory
	default:
		return
	}
	log.Printf("StateSystem: phase -> %s", w.Phase)
}

func (s *StateSystem) Current() component.GamePhase {
	return s.ctx.World.Phase
}
