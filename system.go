package main

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// System sequences the full run: environment preparation fully precedes the
// first scenario, then scenarios execute one at a time. There is no
// concurrency anywhere: the page cache and the fixture trees are shared
// mutable state, so exactly one measured invocation may be in flight. There
// is also no resume state, an interrupted run starts over from the top.
type System struct {
	preparer  *Preparer
	runner    *ScenarioRunner
	scenarios []Scenario
}

func (s *System) Run() error {
	if err := s.preparer.Prepare(); err != nil {
		return err
	}
	return s.runner.Run(s.scenarios)
}

type SysInfo struct {
	Arch     string
	Hostname string
	Platform string
	CPUCount int
	CPUFreq  float64
	RAM      float64
}

// HostStat snapshots the host for the operator's benchmark context. Not a
// measurement.
func HostStat() SysInfo {
	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	totalFreq := 0.0
	for _, cpu := range cpuStat {
		totalFreq += cpu.Mhz
	}
	info := SysInfo{
		Arch:     runtime.GOARCH,
		Hostname: hostStat.Hostname,
		Platform: hostStat.Platform,
		CPUCount: len(cpuStat),
		CPUFreq:  totalFreq / float64(len(cpuStat)) * 1000,
		RAM:      float64(vmStat.Total) / 1024 / 1024 / 1024,
	}
	return info
}
