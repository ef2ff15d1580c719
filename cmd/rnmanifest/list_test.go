package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	rnerrors "github.com/alexisbeaulieu97/rnmanifest/pkg/errors"
)

func TestListCommand_TableOutput(t *testing.T) {
	path := writeManifest(t, "app.json", sampleManifest)

	stdout, _, err := executeCommand("list", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "DISPLAY NAME")
	require.Contains(t, stdout, "RNTesterApp")
	require.Contains(t, stdout, "React-Native Tester")
	// Buffers are not terminals, so swatches fall back to literals.
	require.Contains(t, stdout, "[#1E90FF]")
	require.Contains(t, stdout, "[white]")
	require.Less(t, indexOf(stdout, "RNTesterApp"), indexOf(stdout, "Playground"))
}

func TestListCommand_JSONOutput(t *testing.T) {
	path := writeManifest(t, "app.json", sampleManifest)

	stdout, _, err := executeCommand("list", path, "--json")
	require.NoError(t, err)

	var payload struct {
		Version    string `json:"version"`
		Manifest   string `json:"manifest"`
		Count      int    `json:"count"`
		Components []struct {
			Name            string `json:"name"`
			DisplayName     string `json:"displayName"`
			BackgroundColor string `json:"backgroundColor"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Equal(t, 2, payload.Count)
	require.True(t, filepath.IsAbs(payload.Manifest))
	require.Len(t, payload.Components, 2)
	require.Equal(t, "RNTesterApp", payload.Components[0].Name)
	require.Equal(t, "React-Native Tester", payload.Components[0].DisplayName)
	require.Equal(t, "#1E90FF", payload.Components[0].BackgroundColor)
	require.Equal(t, "Playground", payload.Components[1].Name)
}

func TestListCommand_EmptyManifest(t *testing.T) {
	path := writeManifest(t, "app.json", `{"components": []}`)

	stdout, _, err := executeCommand("list", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "No components declared.")

	stdout, _, err = executeCommand("list", path, "--json")
	require.NoError(t, err)
	require.Contains(t, stdout, `"count": 0`)
	require.Contains(t, stdout, `"components": []`)
}

func TestListCommand_InvalidManifest(t *testing.T) {
	path := writeManifest(t, "app.json", `{"components": [{"A": {"displayName": "Alpha"}}]}`)

	stdout, _, err := executeCommand("list", path)
	require.Error(t, err)
	require.Empty(t, stdout)
	require.Contains(t, err.Error(), "Failed to list: reading manifest")
	require.Contains(t, err.Error(), "components[0].A.backgroundColor")

	var readErr *rnerrors.ReadError
	require.ErrorAs(t, err, &readErr)
	require.Equal(t, rnerrors.KindMissingField, readErr.Kind)
}

func TestListCommand_MissingFile(t *testing.T) {
	_, _, err := executeCommand("list", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "locating manifest")
}

func TestListCommand_DirectoryPath(t *testing.T) {
	_, _, err := executeCommand("list", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "is a directory")
}

func TestListCommand_VerboseJSONLogs(t *testing.T) {
	path := writeManifest(t, "app.json", sampleManifest)

	_, stderr, err := executeCommand("list", path, "-v", "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, stderr, `"message":"manifest loaded"`)
	require.Contains(t, stderr, `"components":2`)
	require.Contains(t, stderr, `"command":"list"`)
}

func TestListCommand_UnknownLogFormat(t *testing.T) {
	path := writeManifest(t, "app.json", sampleManifest)

	_, _, err := executeCommand("list", path, "--log-format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "configuring logging")
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
