package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ExecRunner runs external commands with their output streamed to the
// operator, so build progress and the engine's own report stay visible.
type ExecRunner struct{}

func (ExecRunner) Run(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	go func() { io.Copy(os.Stdout, stdout) }()
	go func() { io.Copy(os.Stderr, stderr) }()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%v failed: %w", name, err)
	}
	return nil
}
