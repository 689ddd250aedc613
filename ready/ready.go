// Package ready is the entry point the host calls when it enables ServerReady. It waits for the other plugins with a
// coordinator and sets up the empty game once they are done.
package ready

import (
	"context"
	"errors"

	"github.com/plexverse/serverready/config"
	"github.com/plexverse/serverready/coordinator"
	"github.com/plexverse/serverready/game"
	"github.com/rs/zerolog"
)

// Plugin is an enabled instance of ServerReady.
type Plugin struct {
	Coordinator *coordinator.Coordinator
	Game        *game.EmptyGame

	cancel  context.CancelFunc
	stopped chan struct{}
}

// Enable starts waiting for the plugins on the host in the background and returns immediately. The game is set up on
// the coordinator's goroutine once every plugin has finished loading. Cancelling ctx or calling Disable stops waiting.
func Enable(ctx context.Context, host coordinator.Host, cfg *config.Config, bus *game.Bus, log *zerolog.Logger) (*Plugin, error) {
	interval, err := cfg.Coordinator.Interval()
	if err != nil {
		return nil, err
	}
	p := &Plugin{
		Game:    game.NewEmptyGame(bus),
		stopped: make(chan struct{}),
	}
	p.Coordinator = coordinator.New(host, coordinator.Settings{
		Self:        cfg.Plugin.Name,
		StableTicks: cfg.Coordinator.StableTicks,
		Interval:    interval,
		Log:         log,
		OnReady:     p.Game.Setup,
	})

	ctx, p.cancel = context.WithCancel(ctx)
	go func() {
		defer close(p.stopped)
		if err := p.Coordinator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn().Err(err).Msg("Stopped waiting for plugins before the game state was set up.")
		}
	}()
	return p, nil
}

// Disable stops waiting for plugins and returns once the coordinator goroutine exited. The game is torn down.
func (p *Plugin) Disable() {
	p.cancel()
	<-p.stopped
	p.Game.Teardown()
}
