package main

import (
	"fmt"
	"runtime"
)

// DropCachesCommand returns the shell command wiping the OS page cache, so
// every measurement starts cold. Needs the sudo credentials refreshed during
// preparation.
func DropCachesCommand() (string, error) {
	switch runtime.GOOS {
	case "linux":
		return "sync && echo 3 | sudo tee /proc/sys/vm/drop_caches", nil
	case "darwin":
		return "sync && purge", nil
	}
	return "", fmt.Errorf("unable to drop caches for platform '%v'", runtime.GOOS)
}

// RestoreFixturesCommand reverts the working tree and every nested fixture
// submodule to the last committed state. Idempotent on a pristine tree.
func RestoreFixturesCommand() string {
	return "git checkout --quiet -- . && git submodule foreach --quiet --recursive 'git checkout --quiet -- .'"
}

// PrepareHook composes the per-run hook: restore first (the tool under test
// mutates fixtures in place, and restore I/O must not land after the cache
// wipe), then drop caches.
func PrepareHook() (string, error) {
	drop, err := DropCachesCommand()
	if err != nil {
		return "", err
	}
	return RestoreFixturesCommand() + " && " + drop, nil
}
