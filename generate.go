package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/plexverse/serverready/config"
	"github.com/plexverse/serverready/descriptor"
	"github.com/plexverse/serverready/plugin"
	"github.com/plexverse/serverready/plugin/provider"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	// config is the path of serverready.toml. Relative output and lock paths in it are resolved against its directory.
	config string
	// out overrides the output path of the configuration.
	out   string
	force bool
	watch bool
}

func newGenerateCommand(logger *zerolog.Logger) *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate " + descriptor.FileName + " from serverready.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := generate(logger, opts); err != nil {
				return err
			}
			if opts.watch {
				return watch(cmd.Context(), logger, opts)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "serverready.toml", "Path of the configuration file.")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Specifies an output file name for the plugin descriptor.")
	cmd.Flags().BoolVar(&opts.force, "force", false, "If set, the descriptor is always generated, even if it is up-to-date.")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Keep running and regenerate the descriptor whenever the configuration changes.")
	return cmd
}

// generate writes the plugin descriptor described by the configuration. It returns false if the descriptor was already
// up-to-date and nothing was written.
func generate(logger *zerolog.Logger, opts generateOptions) (bool, error) {
	logger.Debug().Msgf("Reading %s...", opts.config)
	cfg, err := config.GetOrMakeConfig(logger, opts.config)
	if err != nil {
		return false, err
	}

	dir := filepath.Dir(opts.config)
	outPath := resolve(dir, cfg.Output.Path)
	if opts.out != "" {
		if outPath, err = filepath.Abs(opts.out); err != nil {
			return false, fmt.Errorf("unable to get current working directory: %w", err)
		}
	}
	lockPath := resolve(dir, cfg.Output.Lock)

	logger.Debug().Msgf("Parsing dependencies...")
	provider.RegisterAll()
	server, bootstrap, err := plugin.ParseAll(cfg.Dependency)
	if err != nil {
		return false, fmt.Errorf("error trying to parse dependencies: %w", err)
	}
	d := descriptor.Descriptor{
		Name:        cfg.Plugin.Name,
		Version:     cfg.Plugin.Version,
		Main:        cfg.Plugin.Main,
		APIVersion:  cfg.Plugin.APIVersion,
		Description: cfg.Plugin.Description,
		Authors:     cfg.Plugin.Authors,
		Website:     cfg.Plugin.Website,
		Server:      server,
		Bootstrap:   bootstrap,
	}

	logger.Debug().Msgf("Reading %s...", lockPath)
	// Compare the previous lock with the current state. If both the inputs and the generated file are unchanged there
	// is nothing to do.
	lock, err := config.GetLock(logger, lockPath)
	if err != nil {
		return false, err
	}
	inputs, err := plugin.Checksum([]string{opts.config}, version, outPath)
	if err != nil {
		return false, fmt.Errorf("could not compute checksum of %s: %w", opts.config, err)
	}
	newLock := &config.LockFile{Version: config.LockVersion, Inputs: inputs}
	if sum, err := plugin.Checksum([]string{outPath}); err == nil {
		newLock.Descriptor = sum
	}
	if !opts.force && lock.Matches(newLock) {
		logger.Info().Msgf("%s is up-to-date.", descriptor.FileName)
		return false, nil
	}

	logger.Info().Msgf("Generating %s...", descriptor.FileName)
	start := time.Now()
	if err := descriptor.Generate(outPath, d); err != nil {
		return false, err
	}
	if newLock.Descriptor, err = plugin.Checksum([]string{outPath}); err != nil {
		return false, fmt.Errorf("could not compute checksum of %s: %w", outPath, err)
	}

	logger.Debug().Msgf("Writing %s...", lockPath)
	if err := config.WriteLock(lockPath, newLock); err != nil {
		return false, fmt.Errorf("could not write %s: %w", lockPath, err)
	}
	logger.Info().Msgf("Done! Wrote %s in %.3f seconds.", outPath, time.Since(start).Seconds())
	return true, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// watch regenerates the descriptor every time the configuration file is written, until ctx is cancelled.
func watch(ctx context.Context, logger *zerolog.Logger, opts generateOptions) error {
	cfgPath, err := filepath.Abs(opts.config)
	if err != nil {
		return fmt.Errorf("unable to get current working directory: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not start watching %s: %w", opts.config, err)
	}
	defer w.Close()
	// Editors often replace a file instead of writing to it, which drops a watch on the file itself.
	if err := w.Add(filepath.Dir(cfgPath)); err != nil {
		return fmt.Errorf("could not start watching %s: %w", opts.config, err)
	}

	logger.Info().Msgf("Watching %s for changes...", opts.config)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != cfgPath || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			logger.Debug().Msgf("%s changed.", opts.config)
			if _, err := generate(logger, opts); err != nil {
				logger.Error().Msgf("Could not generate %s: %v", descriptor.FileName, err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Msgf("Error while watching %s: %v", opts.config, err)
		}
	}
}
