// Package parallel runs independent loop bodies on a bounded number of goroutines
package parallel

import "fmt"
import "runtime"
import "sync"

import "github.com/klauspost/cpuid/v2"

// Workers returns the number of goroutines to use: the logical core count
// capped by limit. A limit of zero or less means no cap.
func Workers(limit int) int {
	n := cpuid.CPU.LogicalCores
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if limit > 0 && limit < n {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ForEach calls body for every i in [0, length), running at most limit
// bodies at once. It returns when all of them are done.
func ForEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return
	}
	if limit <= 0 {
		limit = 1
	}
	if limit == 1 {
		for i := 0; i < length; i++ {
			body(i)
		}
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)
	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			body(i)
		}(i)
	}
	wg.Wait()
}

// Banner describes the CPU the workers run on.
func Banner() string {
	return fmt.Sprintf("%s (%d logical cores)", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores)
}
