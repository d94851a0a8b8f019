package main

// Scenario is one benchmark configuration before parameter expansion.
type Scenario struct {
	Language   string
	QueryType  string
	FileSuffix string
	Fixtures   []string
}

// Axis is a named list of values combined combinatorially with the other axes.
type Axis struct {
	Name   string
	Values []string
}

// GridCell is one fully bound combination of axis values.
type GridCell struct {
	Fixture string
	Find    string
	Replace string
}

// MeasureJob carries everything the benchmarking engine needs to measure one
// scenario: the command template with the axis placeholders still unbound, the
// axes to expand over, the repetition bound and the hygiene hooks.
type MeasureJob struct {
	Scenario Scenario
	Template string
	Axes     []Axis
	MaxRuns  int
	Prepare  string
	Cleanup  string
}

type Engine interface {
	Name() string
	Measure(job MeasureJob) error
}

// CommandRunner spawns an external command in dir and waits for it to finish.
type CommandRunner interface {
	Run(dir string, name string, args ...string) error
}
