// Package batch runs independent jobs on a fixed worker pool.
package batch

import "sync"

// Run calls fn(i) for every i in [0, n) using up to workers goroutines
// and returns once all calls have finished.
//
// fn must only touch state owned by index i.
func Run(workers, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				fn(idx)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
}
