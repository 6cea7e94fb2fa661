package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
styles: {s: {node: {shape: {type: sphere}}}}
nodes: [{id: a, style: s}, {id: b, style: s}]
`), 0o600))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"stats", path}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "node-style-s-3d")
}

func TestRun_Error(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"stats", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: ")
}
