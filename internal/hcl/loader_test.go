package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario drops an HCL scenario file into dir and returns its path.
func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	scenarioHCL := `
		wave "canonical" {
			rows   = 3
			cols   = 3
			rounds = 5
			expect = 13
		}

		wave "unchecked" {
			rows   = 2
			cols   = 4
			rounds = 1
		}
	`
	path := writeScenario(t, t.TempDir(), "main.hcl", scenarioHCL)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Waves, 2)

	first := model.Waves[0]
	assert.Equal(t, "canonical", first.Name)
	assert.Equal(t, 3, first.Rows)
	assert.Equal(t, 3, first.Cols)
	assert.Equal(t, 5, first.Rounds)
	require.NotNil(t, first.Expect)
	assert.Equal(t, 13, *first.Expect)

	second := model.Waves[1]
	assert.Equal(t, "unchecked", second.Name)
	assert.Nil(t, second.Expect, "expect should stay unset when the attribute is absent")
}

func TestLoad_EvaluatesExpressions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Attributes are HCL expressions, not bare literals, so arithmetic
	// must work.
	scenarioHCL := `
		wave "computed" {
			rows   = 2 + 1
			cols   = 9 / 3
			rounds = 2 * 5
		}
	`
	path := writeScenario(t, t.TempDir(), "main.hcl", scenarioHCL)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Waves, 1)
	assert.Equal(t, 3, model.Waves[0].Rows)
	assert.Equal(t, 3, model.Waves[0].Cols)
	assert.Equal(t, 10, model.Waves[0].Rounds)
}

func TestLoad_DirectoryScansSorted(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Waves from a directory must come back in lexical file order so runs
	// are reproducible.
	tempDir := t.TempDir()
	writeScenario(t, tempDir, "b.hcl", `
		wave "from_b" {
			rows   = 2
			cols   = 2
			rounds = 1
		}
	`)
	writeScenario(t, tempDir, "a.hcl", `
		wave "from_a" {
			rows   = 3
			cols   = 3
			rounds = 1
		}
	`)
	writeScenario(t, tempDir, "notes.txt", `not a scenario`)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), tempDir)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Waves, 2)
	assert.Equal(t, "from_a", model.Waves[0].Name)
	assert.Equal(t, "from_b", model.Waves[1].Name)
}

func TestLoad_MissingPathFails(t *testing.T) {
	t.Parallel()

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))

	// --- Assert ---
	require.Error(t, err)
	assert.Nil(t, model)
	assert.Contains(t, err.Error(), "error accessing path")
}

func TestLoad_MalformedFileFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	scenarioHCL := `
		wave "broken" {
			rows = 3
	`
	path := writeScenario(t, t.TempDir(), "main.hcl", scenarioHCL)

	// --- Act ---
	_, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_MissingRequiredAttributeFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// gohcl does not reject a missing expression-typed attribute on its own;
	// the loader has to.
	scenarioHCL := `
		wave "incomplete" {
			rows = 3
			cols = 3
		}
	`
	path := writeScenario(t, t.TempDir(), "main.hcl", scenarioHCL)

	// --- Act ---
	_, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required attribute "rounds"`)
}

func TestLoad_NonNumericAttributeFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	scenarioHCL := `
		wave "stringy" {
			rows   = "three"
			cols   = 3
			rounds = 1
		}
	`
	path := writeScenario(t, t.TempDir(), "main.hcl", scenarioHCL)

	// --- Act ---
	_, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), `wave "stringy"`)
	assert.Contains(t, err.Error(), `attribute "rows"`)
}

func TestLoad_FractionalAttributeFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	scenarioHCL := `
		wave "halved" {
			rows   = 3
			cols   = 3
			rounds = 5 / 2
		}
	`
	path := writeScenario(t, t.TempDir(), "main.hcl", scenarioHCL)

	// --- Act ---
	_, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), `attribute "rounds"`)
}

func TestLoad_MergesMultiplePaths(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dirOne := t.TempDir()
	dirTwo := t.TempDir()
	first := writeScenario(t, dirOne, "one.hcl", `
		wave "one" {
			rows   = 2
			cols   = 2
			rounds = 1
		}
	`)
	second := writeScenario(t, dirTwo, "two.hcl", `
		wave "two" {
			rows   = 2
			cols   = 3
			rounds = 1
		}
	`)

	// --- Act ---
	// Passing the first file twice must not duplicate its waves.
	model, err := NewLoader().Load(context.Background(), first, second, first)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Waves, 2)
	assert.Equal(t, "one", model.Waves[0].Name)
	assert.Equal(t, "two", model.Waves[1].Name)
}
