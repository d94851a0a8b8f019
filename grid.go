package main

import (
	"fmt"
	"strings"
)

// ExpandGrid produces the cross product of the three axes as an explicit
// nested loop, in declaration order: every combination appears exactly once,
// nothing is skipped or deduplicated.
func ExpandGrid(fixtures, finds, replaces []string) []GridCell {
	cells := make([]GridCell, 0, len(fixtures)*len(finds)*len(replaces))
	for _, fixture := range fixtures {
		for _, find := range finds {
			for _, replace := range replaces {
				cells = append(cells, GridCell{Fixture: fixture, Find: find, Replace: replace})
			}
		}
	}
	return cells
}

func substitute(template string, name string, value string) string {
	return strings.ReplaceAll(template, "{"+name+"}", value)
}

// ScenarioTemplate binds the scenario fields into the command template. The
// fixture/find/replace placeholders stay unbound for the engine to fill per
// grid cell.
func ScenarioTemplate(scenario Scenario) string {
	template := commandTemplate
	template = substitute(template, "language", scenario.Language)
	template = substitute(template, "query", scenario.QueryType)
	template = substitute(template, "suffix", scenario.FileSuffix)
	return template
}

// BindCell instantiates the command for one grid cell. A placeholder left
// unresolved after binding means the template and the axes disagree, which
// would silently benchmark the wrong command, so it is an error.
func BindCell(template string, cell GridCell) (string, error) {
	command := template
	command = substitute(command, "fixture", cell.Fixture)
	command = substitute(command, "find", cell.Find)
	command = substitute(command, "replace", cell.Replace)
	if open := strings.IndexByte(command, '{'); open >= 0 {
		if length := strings.IndexByte(command[open:], '}'); length >= 0 {
			return "", fmt.Errorf("unbound placeholder %v in command %v", command[open:open+length+1], command)
		}
	}
	return command, nil
}
