package main

import "os"
import "runtime/pprof"

// profile collects a cpu profile into path until the returned func is called.
func profile(path string) func() {
	f, err := os.Create(path)
	if err != nil {
		println(err.Error())
		return func() {}
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		println(err.Error())
		f.Close()
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}
}
