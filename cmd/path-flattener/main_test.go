package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const shapeFile = "../../internal/shape/testdata/pagination.yaml"

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	code := run(append([]string{"--log-level=error"}, args...), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Flatten(t *testing.T) {
	code, out, errOut := runCLI(t, "flatten", shapeFile)
	require.Equal(t, 0, code, errOut)

	var doc struct {
		Shape         string `yaml:"shape"`
		ResourceState string `yaml:"resource_state"`
		Paths         map[string]struct {
			Kind string `yaml:"kind"`
		} `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "Query", doc.Shape)
	assert.Equal(t, "ResourceState", doc.ResourceState)
	assert.Len(t, doc.Paths, 7)
	assert.Equal(t, "boolean_or_mapper", doc.Paths["pagination.filters"].Kind)
	assert.Equal(t, "mapper", doc.Paths["pagination.filters.search"].Kind)
	assert.NotContains(t, doc.Paths, "tags")
}

func TestRun_Flatten_ResourceStateOverride(t *testing.T) {
	code, out, errOut := runCLI(t, "--resource-state=Store", "flatten", shapeFile)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "func(Store) number")
}

func TestRun_Struct(t *testing.T) {
	code, out, errOut := runCLI(t, "struct", "path-flattener/examples/pagination", "Query")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "pagination.filters:")
	assert.Contains(t, out, "boolean | func(ResourceState) Filters")
}

func TestRun_Struct_EmitShape(t *testing.T) {
	code, out, errOut := runCLI(t, "--emit-shape", "struct", "path-flattener/examples/pagination", "pagination.Query")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "name: Query")
	assert.Contains(t, out, "list: string")
}

func TestRun_Resolve(t *testing.T) {
	code, out, errOut := runCLI(t, "resolve", shapeFile, "pagination.filters.order")
	require.Equal(t, 0, code, errOut)

	var node resolvedNode
	require.NoError(t, yaml.Unmarshal([]byte(out), &node))
	assert.Equal(t, "leaf", node.Kind)
	assert.Equal(t, []string{"pagination", "filters", "order"}, node.Segments)
	assert.Equal(t, "'asc' | 'desc'", node.Type)
}

func TestRun_Resolve_NotFound(t *testing.T) {
	code, _, errOut := runCLI(t, "resolve", shapeFile, "pagination.missing")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "path not found")

	code, _, errOut = runCLI(t, "resolve", shapeFile, "pagination.pagesize")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "pageSize")
}

func TestRun_Parse(t *testing.T) {
	code, out, _ := runCLI(t, "parse", "a.b.c")
	require.Equal(t, 0, code)
	assert.Equal(t, "- a\n- b\n- c\n", out)

	code, _, errOut := runCLI(t, "parse", "a..b")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "malformed path")
}

func TestRun_Usage(t *testing.T) {
	code, _, _ := runCLI(t)
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "flatten")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "unknown", "x")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "--no-such-flag")
	assert.Equal(t, 2, code)
}

func TestRun_InvalidConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--log-level=loud", "parse", "a"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
}
