// Package timer реализует кооперативные отложенные задачи, которые двигаются
// внешним тиком кадра. Это замена корутинам "подожди N секунд": у задачи есть
// только оставшееся время и продолжение.
package timer

// Handle идентифицирует запланированную задачу.
type Handle uint64

type task struct {
	handle    Handle
	remaining float64
	fn        func()
}

// Scheduler — очередь отложенных задач. Не потокобезопасен: все вызовы идут
// из потока симуляции.
type Scheduler struct {
	tasks   []*task
	added   []*task
	next    Handle
	now     float64
	ticking bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the accumulated simulation time.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After планирует fn через delay секунд. Задача, добавленная во время Update,
// впервые рассматривается на следующем тике.
func (s *Scheduler) After(delay float64, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	s.next++
	t := &task{handle: s.next, remaining: delay, fn: fn}
	if s.ticking {
		s.added = append(s.added, t)
	} else {
		s.tasks = append(s.tasks, t)
	}
	return t.handle
}

// Cancel снимает задачу. Возвращает false, если задача уже выполнена или отменена.
func (s *Scheduler) Cancel(h Handle) bool {
	for _, list := range [][]*task{s.tasks, s.added} {
		for _, t := range list {
			if t.handle == h && t.fn != nil {
				t.fn = nil
				return true
			}
		}
	}
	return false
}

// Pending reports whether the task is still waiting.
func (s *Scheduler) Pending(h Handle) bool {
	for _, list := range [][]*task{s.tasks, s.added} {
		for _, t := range list {
			if t.handle == h {
				return t.fn != nil
			}
		}
	}
	return false
}

// Len returns the number of waiting tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, list := range [][]*task{s.tasks, s.added} {
		for _, t := range list {
			if t.fn != nil {
				n++
			}
		}
	}
	return n
}

// Update продвигает время и выполняет созревшие задачи в порядке их
// постановки в очередь.
func (s *Scheduler) Update(dt float64) {
	s.now += dt
	s.ticking = true
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.fn == nil {
			continue
		}
		t.remaining -= dt
		if t.remaining <= 0 {
			fn := t.fn
			t.fn = nil
			fn()
			continue
		}
		kept = append(kept, t)
	}
	// Хвост старого среза больше не нужен.
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
	s.ticking = false
	for _, t := range s.added {
		if t.fn != nil {
			s.tasks = append(s.tasks, t)
		}
	}
	s.added = nil
}

// Clear отменяет все задачи.
func (s *Scheduler) Clear() {
	for _, t := range s.tasks {
		t.fn = nil
	}
	for _, t := range s.added {
		t.fn = nil
	}
	s.tasks = nil
	s.added = nil
}
