package component

// GamePhase — фаза партии
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseVictory
	PhaseDefeat
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "PLAYING"
	case PhaseVictory:
		return "VICTORY"
	case PhaseDefeat:
		return "DEFEAT"
	default:
		return "UNKNOWN"
	}
}
