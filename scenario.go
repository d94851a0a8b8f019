package main

// Layout of the benchmark working directory: the harness runs from inside the
// checkout of the tool under test, next to the fixture submodules, with the
// staged release binary at ./srgn.
const (
	RepoDir  = ".."
	WorkDir  = "."
	ToolName = "srgn"
)

// MaxRuns bounds repetitions per grid cell. Cold-cache runs are expensive and
// variance across repetitions is secondary to cold-start fidelity.
const MaxRuns = 3

// commandTemplate mirrors the srgn CLI: a language scoper flag, a premade
// query, a glob over the fixture tree, then the find/replace positionals. The
// tool rewrites matching files in place.
const commandTemplate = `./srgn --{language} {query} --glob '{fixture}/**/*.{suffix}' '{find}' '{replace}'`

// Scenarios is the fixed benchmark suite, executed in declared order. Order
// only affects output readability.
var Scenarios = []Scenario{
	{Language: "go", QueryType: "comments", FileSuffix: "go", Fixtures: []string{"kubernetes"}},
	{Language: "go", QueryType: "strings", FileSuffix: "go", Fixtures: []string{"kubernetes"}},
	{Language: "python", QueryType: "comments", FileSuffix: "py", Fixtures: []string{"django"}},
	{Language: "python", QueryType: "strings", FileSuffix: "py", Fixtures: []string{"django"}},
	{Language: "typescript", QueryType: "comments", FileSuffix: "ts", Fixtures: []string{"vscode"}},
	{Language: "typescript", QueryType: "strings", FileSuffix: "ts", Fixtures: []string{"vscode"}},
}

// The find and replace axes are shared by all scenarios. Values are passed to
// the engine as parameter lists, so they must stay free of commas.
var (
	FindValues    = []string{"e+", "[Tt]he"}
	ReplaceValues = []string{"_", "🙂"}
)
