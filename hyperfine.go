package main

import (
	"fmt"
	"strconv"
	"strings"
)

// HyperfineEngine drives hyperfine, which expands the axis parameter lists
// over their cartesian product, runs the prepare hook before every timed run
// and the cleanup hook after the last run of every combination, and owns all
// timing, repetition and reporting logic.
type HyperfineEngine struct {
	Runner CommandRunner
	Dir    string
}

func (e *HyperfineEngine) Name() string { return "hyperfine" }

// HyperfineArgs assembles the argument vector for one job. Parameter lists
// are comma separated on the hyperfine command line, so axis values carrying a
// comma cannot be passed through faithfully and are rejected up front.
func HyperfineArgs(job MeasureJob) ([]string, error) {
	args := []string{"--min-runs", "1", "--max-runs", strconv.Itoa(job.MaxRuns)}
	for _, axis := range job.Axes {
		for _, value := range axis.Values {
			if strings.Contains(value, ",") {
				return nil, fmt.Errorf("axis %v value %q contains a comma and cannot be passed as a parameter list", axis.Name, value)
			}
		}
		args = append(args, "--parameter-list", axis.Name, strings.Join(axis.Values, ","))
	}
	if job.Prepare != "" {
		args = append(args, "--prepare", job.Prepare)
	}
	if job.Cleanup != "" {
		args = append(args, "--cleanup", job.Cleanup)
	}
	args = append(args, job.Template)
	return args, nil
}

func (e *HyperfineEngine) Measure(job MeasureJob) error {
	args, err := HyperfineArgs(job)
	if err != nil {
		return err
	}
	Logger.Infof("running hyperfine for %v/%v: %v", job.Scenario.Language, job.Scenario.QueryType, job.Template)
	if err := e.Runner.Run(e.Dir, "hyperfine", args...); err != nil {
		return fmt.Errorf("hyperfine failed for %v/%v: %w", job.Scenario.Language, job.Scenario.QueryType, err)
	}
	return nil
}
