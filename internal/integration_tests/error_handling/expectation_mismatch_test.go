package integration_tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/wavegridgo/internal/app"
	"github.com/vk/wavegridgo/internal/hcl"
)

// Test for: a wrong expect attribute fails the run
func TestErrorHandling_ExpectationMismatch_FailsRun(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The 3x3 grid converges to 13, so expecting 999 must fail the wave
	// after it computes.
	scenarioHCL := `
		wave "doomed" {
			rows   = 3
			cols   = 3
			rounds = 2
			expect = 999
		}
	`
	tempDir := t.TempDir()
	scenarioPath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(scenarioHCL), 0600))

	appConfig := &app.Config{ScenarioPath: scenarioPath}
	testApp, logBuffer := app.SetupAppTest(t, appConfig, hcl.NewLoader())

	// --- Act ---
	runErr := testApp.Run(context.Background(), appConfig)

	// --- Assert ---
	require.Error(t, runErr, "app.Run() should fail when a wave misses its expectation")
	require.Contains(t, runErr.Error(), `wave "doomed"`)
	require.Contains(t, runErr.Error(), "produced 13, expected 999")

	// The rounds still ran to completion before the check fired.
	require.Contains(t, logBuffer.String(), "Round 1, result is 13")
}

// Test for: a failing wave stops later waves from running
func TestErrorHandling_FailingWave_StopsFollowingWaves(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	scenarioHCL := `
		wave "first" {
			rows   = 2
			cols   = 2
			rounds = 1
			expect = 999
		}

		wave "second" {
			rows   = 3
			cols   = 3
			rounds = 1
		}
	`
	tempDir := t.TempDir()
	scenarioPath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(scenarioHCL), 0600))

	appConfig := &app.Config{ScenarioPath: scenarioPath}
	testApp, logBuffer := app.SetupAppTest(t, appConfig, hcl.NewLoader())

	// --- Act ---
	runErr := testApp.Run(context.Background(), appConfig)

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), `wave "first"`)
	require.NotContains(t, logBuffer.String(), "result is 13",
		"the second wave should never have started")
}
