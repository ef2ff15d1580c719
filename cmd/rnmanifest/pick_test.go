package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/rnmanifest/internal/launchcache"
	"github.com/alexisbeaulieu97/rnmanifest/internal/manifest"
	"github.com/alexisbeaulieu97/rnmanifest/internal/tui/picker"
)

func stubPicker(t *testing.T, interactive bool, runner func(picker.Model) (*manifest.Component, error)) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	originalRunner := pickRunner
	originalInteractive := isInteractive
	t.Cleanup(func() {
		pickRunner = originalRunner
		isInteractive = originalInteractive
	})

	pickRunner = runner
	isInteractive = func() bool { return interactive }
}

// drive feeds key presses through the model the way the Bubbletea runtime would.
func drive(keys ...tea.KeyMsg) func(picker.Model) (*manifest.Component, error) {
	return func(m picker.Model) (*manifest.Component, error) {
		var model tea.Model = m
		for _, k := range keys {
			model, _ = model.Update(k)
		}
		final := model.(picker.Model)
		if comp, ok := final.Selected(); ok {
			return comp, nil
		}
		return nil, picker.ErrCancelled
	}
}

func TestPickCommand_PrintsSelectionAndRecordsLaunch(t *testing.T) {
	stubPicker(t, true, drive(tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}))
	path := writeManifest(t, "app.json", sampleManifest)

	stdout, _, err := executeCommand("pick", path)
	require.NoError(t, err)
	require.Equal(t, "Playground\n", stdout)

	cachePath, err := launchcache.DefaultPath()
	require.NoError(t, err)
	cache, err := launchcache.New(cachePath)
	require.NoError(t, err)

	launch, ok := cache.Get(path)
	require.True(t, ok)
	require.Equal(t, "Playground", launch.Component)
	require.WithinDuration(t, time.Now(), launch.LaunchedAt, 5*time.Second)
}

func TestPickCommand_PreselectsLastLaunch(t *testing.T) {
	stubPicker(t, true, drive(tea.KeyMsg{Type: tea.KeyEnter}))
	path := writeManifest(t, "app.json", sampleManifest)

	cachePath, err := launchcache.DefaultPath()
	require.NoError(t, err)
	cache, err := launchcache.New(cachePath)
	require.NoError(t, err)
	cache.Set(path, launchcache.Launch{Component: "Playground"})
	require.NoError(t, cache.Save())

	stdout, _, err := executeCommand("pick", path)
	require.NoError(t, err)
	require.Equal(t, "Playground\n", stdout)
}

func TestPickCommand_ForgetsRemovedComponent(t *testing.T) {
	stubPicker(t, true, drive(tea.KeyMsg{Type: tea.KeyEsc}))
	path := writeManifest(t, "app.json", sampleManifest)

	cachePath, err := launchcache.DefaultPath()
	require.NoError(t, err)
	cache, err := launchcache.New(cachePath)
	require.NoError(t, err)
	cache.Set(path, launchcache.Launch{Component: "Removed"})
	require.NoError(t, cache.Save())

	stdout, stderr, err := executeCommand("pick", path)
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "no longer declared")

	reloaded, err := launchcache.New(cachePath)
	require.NoError(t, err)
	_, ok := reloaded.Get(path)
	require.False(t, ok)
}

func TestPickCommand_NoCacheIgnoresHistory(t *testing.T) {
	stubPicker(t, true, drive(tea.KeyMsg{Type: tea.KeyEnter}))
	path := writeManifest(t, "app.json", sampleManifest)

	cachePath, err := launchcache.DefaultPath()
	require.NoError(t, err)
	cache, err := launchcache.New(cachePath)
	require.NoError(t, err)
	cache.Set(path, launchcache.Launch{Component: "Playground"})
	require.NoError(t, cache.Save())

	stdout, _, err := executeCommand("pick", path, "--no-cache")
	require.NoError(t, err)
	require.Equal(t, "RNTesterApp\n", stdout)
}

func TestPickCommand_CancelPrintsNothing(t *testing.T) {
	stubPicker(t, true, drive(tea.KeyMsg{Type: tea.KeyEsc}))
	path := writeManifest(t, "app.json", sampleManifest)

	stdout, _, err := executeCommand("pick", path)
	require.NoError(t, err)
	require.Empty(t, stdout)
}

func TestPickCommand_RequiresTerminal(t *testing.T) {
	stubPicker(t, false, drive())
	path := writeManifest(t, "app.json", sampleManifest)

	_, _, err := executeCommand("pick", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "interactive terminal is required")
}

func TestPickCommand_EmptyManifest(t *testing.T) {
	stubPicker(t, true, drive(tea.KeyMsg{Type: tea.KeyEnter}))
	path := writeManifest(t, "app.json", `{}`)

	_, _, err := executeCommand("pick", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "manifest declares no components")
}
