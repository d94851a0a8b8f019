package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func benchSystem(t *testing.T, commands *fakeCommands, engine *fakeEngine) *System {
	t.Helper()
	return &System{
		preparer: &Preparer{
			Runner:   commands,
			LookPath: hyperfinePresent,
			RepoDir:  builtRepo(t, "srgn"),
			WorkDir:  t.TempDir(),
			Binary:   "srgn",
		},
		runner: &ScenarioRunner{
			Engine:   engine,
			Finds:    FindValues,
			Replaces: ReplaceValues,
			MaxRuns:  MaxRuns,
		},
		scenarios: Scenarios,
	}
}

func TestSystemPreparesBeforeMeasuring(t *testing.T) {
	var events []string
	commands := &fakeCommands{events: &events}
	engine := &fakeEngine{events: &events}

	require.NoError(t, benchSystem(t, commands, engine).Run())
	require.Len(t, engine.jobs, len(Scenarios))

	firstMeasure := -1
	lastCommand := -1
	for i, event := range events {
		if strings.HasPrefix(event, "measure") && firstMeasure < 0 {
			firstMeasure = i
		}
		if strings.HasPrefix(event, "command") {
			lastCommand = i
		}
	}
	require.GreaterOrEqual(t, firstMeasure, 0)
	require.Greater(t, firstMeasure, lastCommand, "setup must fully precede any scenario: %v", events)
}

func TestSystemAbortsWhenPreparationFails(t *testing.T) {
	commands := &fakeCommands{failOn: "git submodule"}
	engine := &fakeEngine{}

	err := benchSystem(t, commands, engine).Run()
	require.ErrorContains(t, err, "sync fixtures")
	require.Empty(t, engine.jobs, "no measurement may run after a setup failure")
}

func TestSystemAbortsOnEngineFailure(t *testing.T) {
	commands := &fakeCommands{}
	engine := &fakeEngine{failOn: Scenarios[0].Language + "/" + Scenarios[0].QueryType}

	err := benchSystem(t, commands, engine).Run()
	require.Error(t, err)
	require.Len(t, engine.jobs, 1)
}
