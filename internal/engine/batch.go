package engine

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/hvackit/ductnoise/pkg/models"
)

// CalculateBatch runs every path through a fixed worker pool and returns
// one result per input, in input order. Paths are isolated: a failure or
// panic in one fills that slot's Error field and the rest continue.
// Cancelling ctx stops dispatch; undispatched slots carry the context
// error.
func (e *Engine) CalculateBatch(ctx context.Context, inputs []models.PathInput, workers int) []models.PathResult {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	results := make([]models.PathResult, len(inputs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = e.calculateIsolated(inputs[i])
			}
		}()
	}

	dispatched := make([]bool, len(inputs))
dispatch:
	for i := range inputs {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- i:
			dispatched[i] = true
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	for i, ok := range dispatched {
		if !ok {
			results[i] = models.PathResult{Name: inputs[i].Name, Error: ctx.Err().Error()}
		}
	}
	return results
}

// calculateIsolated runs one path, converting errors and panics into the
// result's Error field so one bad path never takes down a batch.
func (e *Engine) calculateIsolated(input models.PathInput) (out models.PathResult) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Str("path", input.Name).Interface("panic", r).Msg("path calculation panicked")
			out = models.PathResult{Name: input.Name, Error: fmt.Sprintf("internal calculation failure: %v", r)}
		}
	}()

	result, err := e.CalculatePath(input)
	if err != nil {
		return models.PathResult{Name: input.Name, Error: err.Error()}
	}
	return *result
}
