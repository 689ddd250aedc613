package coordinator

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultStableTicks is one second at the server's tick rate.
	DefaultStableTicks = 20
	// DefaultInterval is the length of one server tick.
	DefaultInterval = 50 * time.Millisecond
)

// Settings configures a Coordinator.
type Settings struct {
	// Self is the name of the plugin running the coordinator. It is not waited for.
	Self string
	// StableTicks is the number of consecutive ticks without any state change required before the plugins are
	// considered ready. Zero means DefaultStableTicks.
	StableTicks int
	// Interval is the time between two ticks in Run. Zero means DefaultInterval.
	Interval time.Duration
	// Log receives warnings about failed plugins and the final status. A nil logger discards everything.
	Log *zerolog.Logger
	// OnReady is called once, from the goroutine calling Tick, when all plugins are ready.
	OnReady func()
}

// Coordinator waits until every other plugin on the host has finished loading and the set of plugin states has not
// changed for a while, and then runs a callback. Plugins that fail do not block it; a warning is logged for each of
// them instead.
type Coordinator struct {
	host Host
	set  Settings

	mu     sync.Mutex
	states map[string]State
	warned []string
	stable int
	ready  bool
	done   chan struct{}
}

// New returns a coordinator for the host. It does nothing until Tick or Run is called.
func New(host Host, set Settings) *Coordinator {
	if set.StableTicks <= 0 {
		set.StableTicks = DefaultStableTicks
	}
	if set.Interval <= 0 {
		set.Interval = DefaultInterval
	}
	if set.Log == nil {
		nop := zerolog.Nop()
		set.Log = &nop
	}
	return &Coordinator{
		host:   host,
		set:    set,
		states: map[string]State{},
		done:   make(chan struct{}),
	}
}

// Tick performs a single check of the plugin states. It returns true once the plugins are ready; after that further
// calls do nothing and keep returning true.
func (c *Coordinator) Tick() bool {
	c.mu.Lock()
	if c.ready {
		c.mu.Unlock()
		return true
	}

	snap := TakeSnapshot(c.host, c.set.Self)
	if !maps.Equal(snap.States, c.states) {
		c.states = snap.States
		c.stable = 0
	} else {
		c.stable++
	}
	c.warnFailed(snap.Failed)

	if c.stable < c.set.StableTicks || !snap.Finished {
		c.mu.Unlock()
		return false
	}
	c.ready = true
	if n := len(c.warned); n > 0 {
		c.set.Log.Info().Int("failed", n).Msgf("All plugins have finished loading. Setting up game state with %d failed plugin(s).", n)
	} else {
		c.set.Log.Info().Msg("All plugins have finished loading successfully. Setting up game state.")
	}
	c.mu.Unlock()

	if c.set.OnReady != nil {
		c.set.OnReady()
	}
	close(c.done)
	return true
}

// warnFailed logs a warning for every failed plugin that was not warned about before.
func (c *Coordinator) warnFailed(failed []string) {
	for _, name := range failed {
		if contains(c.warned, name) {
			continue
		}
		c.set.Log.Warn().Str("plugin", name).Msgf("Plugin '%s' failed to load but continuing with game state setup.", name)
		c.warned = append(c.warned, name)
	}
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// Run calls Tick every interval until the plugins are ready or ctx is cancelled. In the latter case the context's
// error is returned.
func (c *Coordinator) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.set.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if c.Tick() {
				return nil
			}
		}
	}
}

// Done returns a channel that is closed once the plugins are ready and the callback has returned.
func (c *Coordinator) Done() <-chan struct{} {
	return c.done
}

// Failed returns the names of all plugins that were seen failing, in the order they were first noticed.
func (c *Coordinator) Failed() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.warned...)
}

// StableTicks returns the number of consecutive ticks without state changes seen so far.
func (c *Coordinator) StableTicks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stable
}
