package main

import "os"
import "os/signal"
import "runtime/pprof"
import "syscall"

// With --pgo a CPU profile is collected into default.pgo until the program
// is interrupted.
func init() {
	for _, arg := range os.Args {
		if arg == "-pgo" || arg == "--pgo" {
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			f, err := os.Create("default.pgo")
			if err != nil {
				return
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				f.Close()
				return
			}
			go func() {
				<-sigChan
				pprof.StopCPUProfile()
				f.Close()

				os.Exit(130)
			}()
			return
		}
	}
}
