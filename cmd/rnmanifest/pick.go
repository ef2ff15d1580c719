package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/rnmanifest/internal/launchcache"
	"github.com/alexisbeaulieu97/rnmanifest/internal/manifest"
	"github.com/alexisbeaulieu97/rnmanifest/internal/tui/picker"
)

type pickOptions struct {
	noCache bool
}

var (
	pickRunner = func(m picker.Model) (*manifest.Component, error) {
		return picker.Run(m)
	}
	isInteractive = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
)

func newPickCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick <manifest>",
		Short: "Interactively choose the component to launch",
		Long: `Pick shows the components of a manifest and prints the registry name of
the one you choose, so it can be passed to the host at launch. The choice
is remembered per manifest and preselected next time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "Do not read or record the last launched component")

	return cmd
}

func runPick(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *pickOptions) error {
	if !isInteractive() {
		return newCommandError("pick", "starting picker", errors.New("an interactive terminal is required"), fmt.Sprintf("Run 'rnmanifest list %s' in scripts instead.", path))
	}

	abs, m, err := loadManifest("pick", path, rootFlags.log)
	if err != nil {
		return err
	}

	if m.Components().Count() == 0 {
		return newCommandError("pick", "listing components", errors.New("manifest declares no components"), "Add entries to the \"components\" array.")
	}

	var cache *launchcache.Cache
	preselect := ""
	if !opts.noCache {
		cache, err = openLaunchCache()
		if err != nil {
			return newCommandError("pick", "loading launch cache", err, "Check launch cache file permissions or pass --no-cache.")
		}
		if last, ok := cache.Get(abs); ok {
			if _, found := m.Components().FindComponent(last.Component); found {
				preselect = last.Component
				rootFlags.log.With("component", preselect).Debug("preselecting last launched component")
			} else {
				rootFlags.log.With("component", last.Component).Warn("last launched component is no longer declared; forgetting it")
				cache.Forget(abs)
				if err := cache.Save(); err != nil {
					rootFlags.log.Error(err, "failed to update launch cache")
				}
			}
		}
	}

	model := picker.NewModel(m.Components(), preselect).WithSwatches(supportsColor(cmd.OutOrStdout()))
	comp, err := pickRunner(model)
	if err != nil {
		if errors.Is(err, picker.ErrCancelled) {
			rootFlags.log.Debug("picker cancelled")
			return nil
		}
		return newCommandError("pick", "running picker", err, "Retry in a terminal that supports full-screen programs.")
	}

	if cache != nil {
		cache.Set(abs, launchcache.Launch{Component: comp.Name(), LaunchedAt: time.Now().UTC()})
		if err := cache.Save(); err != nil {
			rootFlags.log.Error(err, "failed to record launch")
		} else {
			rootFlags.log.With("component", comp.Name()).Info("recorded launch")
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), comp.Name())
	return nil
}

func openLaunchCache() (*launchcache.Cache, error) {
	path, err := launchcache.DefaultPath()
	if err != nil {
		return nil, err
	}
	return launchcache.New(path)
}
