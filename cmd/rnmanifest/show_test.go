package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowCommand_DetailedOutput(t *testing.T) {
	path := writeManifest(t, "app.json", sampleManifest)

	stdout, _, err := executeCommand("show", path, "RNTesterApp")
	require.NoError(t, err)
	require.Contains(t, stdout, "Component:    RNTesterApp")
	require.Contains(t, stdout, "Display Name: React-Native Tester")
	require.Contains(t, stdout, "Background:   [#1E90FF]")
}

func TestShowCommand_JSONOutput(t *testing.T) {
	path := writeManifest(t, "app.json", sampleManifest)

	stdout, _, err := executeCommand("show", path, "Playground", "--json")
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, map[string]string{
		"name":            "Playground",
		"displayName":     "Playground",
		"backgroundColor": "white",
	}, payload)
}

func TestShowCommand_FirstDuplicateWins(t *testing.T) {
	path := writeManifest(t, "app.json", `{"components": [
		{"App": {"displayName": "First", "backgroundColor": "#111"}},
		{"App": {"displayName": "Second", "backgroundColor": "#222"}}
	]}`)

	stdout, _, err := executeCommand("show", path, "App")
	require.NoError(t, err)
	require.Contains(t, stdout, "First")
	require.NotContains(t, stdout, "Second")
}

func TestShowCommand_NotFound(t *testing.T) {
	path := writeManifest(t, "app.json", sampleManifest)

	_, _, err := executeCommand("show", path, "Missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), `looking up component "Missing"`)
	require.Contains(t, err.Error(), "rnmanifest list")
}

func TestShowCommand_EmptyName(t *testing.T) {
	path := writeManifest(t, "app.json", sampleManifest)

	_, _, err := executeCommand("show", path, "  ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "component name cannot be empty")
}
