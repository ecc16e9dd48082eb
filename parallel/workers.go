package parallel

import "runtime"

import "github.com/klauspost/cpuid/v2"

// Workers reports the default worker count, the number of logical cores.
func Workers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}
