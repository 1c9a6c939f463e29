package renderer_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/testlint/internal/renderer"
	"github.com/Sumatoshi-tech/testlint/pkg/lint"
	"github.com/Sumatoshi-tech/testlint/pkg/uast/node"
)

func sampleDiagnostics() []lint.Diagnostic {
	anchor := &node.Node{
		Type: node.UASTClass,
		Pos:  &node.Positions{StartLine: 12, StartCol: 3},
	}

	return []lint.Diagnostic{
		{
			RuleID:  "page-singleton",
			Kind:    lint.KindMissingSingleton,
			Message: "Class 'LoginPage' must declare: public static readonly INSTANCE = new LoginPage();",
			File:    "pages/login.page.ts",
			Node:    anchor,
		},
		{
			RuleID:  "hook-pair",
			Kind:    lint.KindMissingTeardown,
			Message: "File registers a 'before' hook without a matching 'after' hook",
			File:    "spec/cart.cy.js",
			Node:    &node.Node{Type: node.UASTCall},
		},
	}
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.New(true).RenderText(sampleDiagnostics(), &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "pages/login.page.ts:12:3")
	assert.Contains(t, output, "page-singleton")
	// Diagnostics without position info render as 0:0.
	assert.Contains(t, output, "spec/cart.cy.js:0:0")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestRenderText_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.New(true).RenderText(nil, &buf)
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.New(true).RenderTable(sampleDiagnostics(), &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "pages/login.page.ts:12:3")
	assert.Contains(t, output, "hook-pair")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.RenderJSON(sampleDiagnostics(), &buf)
	require.NoError(t, err)

	var decoded []map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "page-singleton", decoded[0]["rule"])
	assert.Equal(t, "missing-singleton", decoded[0]["kind"])
	assert.InDelta(t, 12, decoded[0]["line"], 0)
	assert.Equal(t, "spec/cart.cy.js", decoded[1]["file"])
}

func TestRenderJSON_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.RenderJSON(nil, &buf)
	require.NoError(t, err)

	assert.JSONEq(t, "[]", buf.String())
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.RenderYAML(sampleDiagnostics(), &buf)
	require.NoError(t, err)

	var decoded []map[string]any

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "hook-pair", decoded[1]["rule"])
}

func TestRenderSummary_CleanRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.New(true).RenderSummary(1, 0, &buf)
	require.NoError(t, err)

	assert.Equal(t, "checked 1 file, 0 problems\n", buf.String())
}

func TestRenderSummary_ProblemsFound(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.New(true).RenderSummary(3, 1, &buf)
	require.NoError(t, err)

	assert.Equal(t, "checked 3 files, 1 problem\n", buf.String())
}
