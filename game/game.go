package game

// Game is a game running on a single world of the server.
type Game interface {
	// Name is the display name of the game.
	Name() string
	State() GameState
	SetState(s GameState)
	PlayerState(player string) PlayerState
	// Setup prepares the game and announces it to the rest of the server.
	Setup()
	Teardown()
}

// EmptyGame is a game without any mechanics. It exists so that the server leaves the preparing state once every
// plugin has loaded, even when no real game is installed.
type EmptyGame struct {
	bus *Bus
}

// NewEmptyGame returns an empty game publishing its state changes on bus.
func NewEmptyGame(bus *Bus) *EmptyGame {
	return &EmptyGame{bus: bus}
}

func (*EmptyGame) Name() string { return "" }

// State always returns PreStart.
func (*EmptyGame) State() GameState { return PreStart }

// SetState does nothing; the empty game never leaves PreStart.
func (*EmptyGame) SetState(GameState) {}

// PlayerState always returns Alive.
func (*EmptyGame) PlayerState(string) PlayerState { return Alive }

// Setup announces the transition from Preparing to PreStart.
func (g *EmptyGame) Setup() {
	g.bus.Publish(PreStateChange{Game: g, From: Preparing, To: PreStart})
	g.bus.Publish(PostStateChange{Game: g, From: Preparing, To: PreStart})
}

func (*EmptyGame) Teardown() {}

var _ Game = (*EmptyGame)(nil)
