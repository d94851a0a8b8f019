package main

import "fmt"

// ScenarioRunner executes every declared scenario in order, one engine
// invocation per scenario, with cache and fixture hygiene attached as engine
// hooks. Any failure aborts the whole run: a partial suite with silently
// missing cells could be mistaken for "no regression".
type ScenarioRunner struct {
	Engine   Engine
	Finds    []string
	Replaces []string
	MaxRuns  int
}

func (r *ScenarioRunner) Run(scenarios []Scenario) error {
	for _, scenario := range scenarios {
		if err := r.runScenario(scenario); err != nil {
			return err
		}
	}
	return nil
}

func (r *ScenarioRunner) runScenario(scenario Scenario) error {
	Logger.Infof("scenario %v/%v over fixtures %v", scenario.Language, scenario.QueryType, scenario.Fixtures)

	axes := []Axis{
		{Name: "fixture", Values: scenario.Fixtures},
		{Name: "find", Values: r.Finds},
		{Name: "replace", Values: r.Replaces},
	}
	template := ScenarioTemplate(scenario)

	// Preflight: render every grid cell once before handing the template to
	// the engine, so a malformed template fails here instead of surfacing as
	// a wrong measured command.
	cells := ExpandGrid(scenario.Fixtures, r.Finds, r.Replaces)
	for _, cell := range cells {
		if _, err := BindCell(template, cell); err != nil {
			return fmt.Errorf("invalid command template for %v/%v: %w", scenario.Language, scenario.QueryType, err)
		}
	}
	Logger.Infof("expanded %v grid cells for %v/%v", len(cells), scenario.Language, scenario.QueryType)

	prepare, err := PrepareHook()
	if err != nil {
		return err
	}
	job := MeasureJob{
		Scenario: scenario,
		Template: template,
		Axes:     axes,
		MaxRuns:  r.MaxRuns,
		Prepare:  prepare,
		Cleanup:  RestoreFixturesCommand(),
	}
	if err := r.Engine.Measure(job); err != nil {
		return fmt.Errorf("scenario %v/%v failed: %w", scenario.Language, scenario.QueryType, err)
	}
	return nil
}
