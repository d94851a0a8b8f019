package main

import (
	"fmt"
	"io"
	"os"
	"path"
)

// Preparer brings the machine to a state where scenario execution can proceed
// without further privileged or network dependent steps. Steps run strictly
// in order; the first failure aborts the whole run with no partial-setup
// recovery.
type Preparer struct {
	Runner   CommandRunner
	LookPath func(file string) (string, error)
	RepoDir  string
	WorkDir  string
	Binary   string
}

func (p *Preparer) Prepare() error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"refresh sudo credentials", p.refreshSudo},
		{"ensure hyperfine", p.ensureHyperfine},
		{"sync fixtures", p.syncFixtures},
		{"build release binary", p.buildRelease},
		{"stage binary", p.stageBinary},
	}
	for _, step := range steps {
		Logger.Infof("prepare: %v", step.name)
		if err := step.run(); err != nil {
			return fmt.Errorf("failed to %v: %w", step.name, err)
		}
	}
	return nil
}

// Cache dropping later in the run happens inside engine hooks where an
// interactive password prompt would corrupt timings, so the sudo timestamp is
// refreshed (or prompted for) up front.
func (p *Preparer) refreshSudo() error {
	return p.Runner.Run(p.WorkDir, "sudo", "-v")
}

func (p *Preparer) ensureHyperfine() error {
	if _, err := p.LookPath("hyperfine"); err == nil {
		Logger.Infof("hyperfine already installed")
		return nil
	}
	Logger.Infof("hyperfine not found, installing")
	if err := p.Runner.Run(p.WorkDir, "cargo", "install", "hyperfine"); err != nil {
		return err
	}
	if _, err := p.LookPath("hyperfine"); err != nil {
		return fmt.Errorf("hyperfine still missing after install: %w", err)
	}
	return nil
}

func (p *Preparer) syncFixtures() error {
	return p.Runner.Run(p.WorkDir, "git", "submodule", "update", "--init", "--recursive")
}

// Benchmark validity depends on a known build profile, so only a fresh
// optimized build is acceptable. Never falls back to a stale binary.
func (p *Preparer) buildRelease() error {
	return p.Runner.Run(p.RepoDir, "cargo", "build", "--release")
}

// The binary is copied, not moved or linked: the build artifact stays in
// place for post-hoc inspection.
func (p *Preparer) stageBinary() error {
	source := path.Join(p.RepoDir, "target", "release", p.Binary)
	target := path.Join(p.WorkDir, p.Binary)
	Logger.Infof("staging %v to %v", source, target)
	return copyFile(source, target)
}

func copyFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}
