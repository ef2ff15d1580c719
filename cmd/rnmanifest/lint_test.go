package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	rnerrors "github.com/alexisbeaulieu97/rnmanifest/pkg/errors"
)

func TestLintCommand_Clean(t *testing.T) {
	path := writeManifest(t, "app.json", sampleManifest)

	stdout, _, err := executeCommand("lint", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "No problems found.")
}

func TestLintCommand_WarningsDoNotFail(t *testing.T) {
	path := writeManifest(t, "app.json", `{"components": [
		{"App": {"displayName": "", "backgroundColor": "blurple"}}
	]}`)

	stdout, _, err := executeCommand("lint", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "SEVERITY")
	require.Contains(t, stdout, "component 0 (App).displayName")
	require.Contains(t, stdout, "component 0 (App).backgroundColor")
	require.Contains(t, stdout, "warning")
}

func TestLintCommand_ErrorsFail(t *testing.T) {
	path := writeManifest(t, "app.json", `{"components": [
		{"My App": {"displayName": "Mine", "backgroundColor": "#fff"}}
	]}`)

	stdout, _, err := executeCommand("lint", path)
	require.Error(t, err)
	require.Contains(t, stdout, "error")
	require.Contains(t, err.Error(), "Failed to lint")

	var validationErr *rnerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "component 0 (My App).name", validationErr.Field)
}

func TestLintCommand_JSONOutput(t *testing.T) {
	path := writeManifest(t, "app.json", `{"components": [
		{"App": {"displayName": "First", "backgroundColor": "#111"}},
		{"App": {"displayName": "Second", "backgroundColor": "#222"}}
	]}`)

	stdout, _, err := executeCommand("lint", path, "--json")
	require.NoError(t, err)

	var payload struct {
		Passed   bool `json:"passed"`
		Findings []struct {
			Severity  string `json:"severity"`
			Index     int    `json:"index"`
			Component string `json:"component"`
			Field     string `json:"field"`
		} `json:"findings"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.True(t, payload.Passed)
	require.Len(t, payload.Findings, 1)
	require.Equal(t, "warning", payload.Findings[0].Severity)
	require.Equal(t, 1, payload.Findings[0].Index)
	require.Equal(t, "name", payload.Findings[0].Field)
}
