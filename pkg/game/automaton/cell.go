package automaton

// CellState is the simulation tag of a single grid cell
type CellState int

const (
	Dead CellState = iota
	Alive
	AlwaysDead
	AlwaysAlive
)

// Pinned reports whether the simulation leaves this cell alone
func (s CellState) Pinned() bool {
	return s == AlwaysDead || s == AlwaysAlive
}

// Passable reports whether the cell counts as floor
func (s CellState) Passable() bool {
	return s == Alive || s == AlwaysAlive
}

// String returns a short name for the state
func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	case AlwaysDead:
		return "always-dead"
	case AlwaysAlive:
		return "always-alive"
	default:
		return "unknown"
	}
}
