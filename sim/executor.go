package sim

import (
	"sync"
)

// Batch evaluation for parameter sweeps. Work is handed out as contiguous
// index ranges so each worker walks neighbouring runs.

type task struct {
	first, last int
}

// ExecuteBatch evaluates every run and returns results index-aligned with
// the input. Worker count comes from config, clamped to the batch size.
func ExecuteBatch(runs []*Run) []*Result {
	results := make([]*Result, len(runs))
	if len(runs) == 0 {
		return results
	}

	workers := Cfg().Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(runs) {
		workers = len(runs)
	}

	tasks := make(chan task, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				for i := t.first; i < t.last; i++ {
					results[i] = runs[i].Execute()
				}
			}
		}()
	}

	span := (len(runs) + workers - 1) / workers
	for first := 0; first < len(runs); first += span {
		last := first + span
		if last > len(runs) {
			last = len(runs)
		}
		tasks <- task{first: first, last: last}
	}
	close(tasks)
	wg.Wait()
	return results
}
