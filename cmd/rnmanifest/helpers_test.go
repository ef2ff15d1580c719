package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
  "components": [
    { "RNTesterApp": { "displayName": "React-Native Tester", "backgroundColor": "#1E90FF" } },
    { "Playground": { "displayName": "Playground", "backgroundColor": "white" } }
  ]
}`

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeManifest(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
