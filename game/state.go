package game

// GameState is the phase a game is in.
type GameState int

const (
	Preparing GameState = iota
	PreStart
	Started
	Ended
)

func (s GameState) String() string {
	switch s {
	case Preparing:
		return "preparing"
	case PreStart:
		return "pre-start"
	case Started:
		return "started"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// PlayerState is the state of a single player within a game.
type PlayerState int

const (
	Alive PlayerState = iota
	Dead
	Spectator
)

func (s PlayerState) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	case Spectator:
		return "spectator"
	}
	return "unknown"
}
