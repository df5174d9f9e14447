package component

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Alive reports whether the entity still has health left.
func (h *Health) Alive() bool {
	return h.Value > 0
}
