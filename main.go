package main

import (
	"os/exec"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err == nil {
		Logger.Infof("loaded environment from .env")
	}

	info := HostStat()
	Logger.Infof("host stat: %+v", info)

	commands := ExecRunner{}
	system := &System{
		preparer: &Preparer{
			Runner:   commands,
			LookPath: exec.LookPath,
			RepoDir:  RepoDir,
			WorkDir:  WorkDir,
			Binary:   ToolName,
		},
		runner: &ScenarioRunner{
			Engine:   &HyperfineEngine{Runner: commands, Dir: WorkDir},
			Finds:    FindValues,
			Replaces: ReplaceValues,
			MaxRuns:  MaxRuns,
		},
		scenarios: Scenarios,
	}
	if err := system.Run(); err != nil {
		Logger.Fatalf("benchmark run failed: %v", err)
	}
	Logger.Infof("benchmark run finished")
}
