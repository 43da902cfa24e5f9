package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/bloom"
	"golang.org/x/sync/errgroup"
)

// Runner processes a batch of document files through a shared Pipeline.
// Each file is handled by its own worker; workers share nothing but the
// (stateless) pipeline stages.
type Runner struct {
	Pipeline    *Pipeline
	Concurrency int
}

// Summary aggregates the outcome of a batch run.
type Summary struct {
	Processed int
	Failed    int
	Bytes     int
	// DistinctIdentifiers is a Bloom-filter estimate of the number of
	// distinct content identifiers across the batch. Small collision
	// error is acceptable; the figure is informational.
	DistinctIdentifiers uint
}

// FileResult holds the outcome of processing a single file.
type FileResult struct {
	Path   string
	Result *Result
	Err    error
}

// runResult carries one worker's outcome back for ordered collection.
type runResult struct {
	position int
	path     string
	result   *Result
	err      error
}

// batch sizing for the identifier Bloom filter.
const (
	filterExpectedItems      = 100000
	filterFalsePositiveRate  = 0.01
	defaultRunnerConcurrency = 8
)

// RunFiles processes the given files concurrently and returns per-file
// results in input order plus a batch summary. A file that fails to
// read or parse is reported in its FileResult; it never aborts the
// batch. The progress callback, if provided, receives an event as each
// file completes.
func (r *Runner) RunFiles(ctx context.Context, paths []string, progress uniparser.RunProgressFunc) ([]FileResult, *Summary, error) {
	if r.Pipeline == nil {
		return nil, nil, uniparser.Errorf(uniparser.EINTERNAL, "pipeline is not configured")
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = defaultRunnerConcurrency
	}

	resultCh := make(chan runResult, len(paths))

	var completed atomic.Int64
	total := len(paths)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				resultCh <- r.processFile(gctx, i, path)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]FileResult, len(paths))
	summary := &Summary{}
	filter := bloom.NewFilter(filterExpectedItems, filterFalsePositiveRate)

	for res := range resultCh {
		completed.Add(1)
		results[res.position] = FileResult{Path: res.path, Result: res.result, Err: res.err}

		if res.err != nil {
			summary.Failed++
		} else {
			summary.Processed++
			summary.Bytes += len(res.result.Parsed.Body)
			for _, item := range res.result.Items {
				filter.Add(item.Identifier)
			}
		}

		if progress != nil {
			progress(uniparser.RunProgress{
				Path:      res.path,
				Completed: int(completed.Load()),
				Total:     total,
				Err:       res.err,
			})
		}
	}

	summary.DistinctIdentifiers = filter.EstimatedCount()

	return results, summary, ctx.Err()
}

// processFile reads and runs the pipeline for a single file.
func (r *Runner) processFile(ctx context.Context, position int, path string) runResult {
	res := runResult{position: position, path: path}

	body, err := os.ReadFile(path)
	if err != nil {
		res.err = fmt.Errorf("read %s: %w", path, err)
		return res
	}

	result, err := r.Pipeline.Run(ctx, string(body))
	if err != nil {
		res.err = fmt.Errorf("process %s: %w", path, err)
		return res
	}

	res.result = result
	return res
}
