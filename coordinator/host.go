package coordinator

// State is the loading state of a plugin as reported by the host.
type State int

const (
	// Loading plugins have not been enabled yet.
	Loading State = iota
	// Enabled plugins finished loading successfully.
	Enabled
	// Failed plugins were disabled by the host, usually because an error occurred while enabling them.
	Failed
)

// Finished reports whether the plugin will not change state on its own anymore.
func (s State) Finished() bool {
	return s == Enabled || s == Failed
}

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Enabled:
		return "enabled"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Plugin is a plugin installed on the host.
type Plugin interface {
	Name() string
	State() State
}

// Host is the plugin loading platform the coordinator runs in. Implementations must be safe to call from the
// goroutine that runs the coordinator.
type Host interface {
	// Plugins returns every plugin known to the host, including the plugin running the coordinator.
	Plugins() []Plugin
}

// Snapshot is the state of all plugins at a given moment.
type Snapshot struct {
	// States holds the state of every plugin except the one running the coordinator, keyed by name.
	States map[string]State
	// Failed lists the names of the plugins that failed, in the order the host returned them.
	Failed []string
	// Finished is true if every plugin in States has finished loading.
	Finished bool
}

// TakeSnapshot reads the current plugin states from the host. The plugin named self is left out.
func TakeSnapshot(host Host, self string) Snapshot {
	plugins := host.Plugins()
	s := Snapshot{
		States:   make(map[string]State, len(plugins)),
		Finished: true,
	}
	for _, p := range plugins {
		name := p.Name()
		if name == self {
			continue
		}
		state := p.State()
		s.States[name] = state
		if !state.Finished() {
			s.Finished = false
		}
		if state == Failed {
			s.Failed = append(s.Failed, name)
		}
	}
	return s
}
