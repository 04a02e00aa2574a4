package utils

import (
	"runtime"
)

// ParallelFactor caps how many goroutines batch operations run at once. Tests may lower it.
var ParallelFactor = defaultParallelFactor(runtime.GOMAXPROCS(0))

func defaultParallelFactor(procs int) int {
	if procs <= 0 {
		return 1
	}
	// leave room for the caller on very wide machines
	if quarter := procs / 4; quarter > 8 {
		return quarter
	}
	return procs
}

// Workers returns how many goroutines to use for n independent jobs: never more than n or
// ParallelFactor, and at least one.
func Workers(n int) int {
	return Clamp(n, 1, max(ParallelFactor, 1))
}
