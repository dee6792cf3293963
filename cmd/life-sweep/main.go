// Command life-sweep steps many life files concurrently and reports the
// population and bounding box each one reaches.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"life-ca/pkg/life"
	"life-ca/pkg/life/lifefile"

	"golang.org/x/sync/errgroup"
)

type sweepOptions struct {
	gens      int
	workers   int
	rule      string
	keepGoing bool
}

type sweepResult struct {
	path       string
	population int
	grid       life.Size
	bounds     life.Bounds
	empty      bool
	elapsed    time.Duration
	err        error
}

func main() {
	opts := sweepOptions{}
	flag.IntVar(&opts.gens, "gens", 100, "generations to advance each file")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	flag.StringVar(&opts.rule, "rule", "", "rule applied to every file instead of its own")
	flag.BoolVar(&opts.keepGoing, "keep-going", false, "report unreadable files instead of stopping")
	flag.Parse()

	paths, err := expand(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	if len(paths) == 0 {
		log.Fatal("no life files given")
	}

	fmt.Printf("Sweeping %d files (%d workers, %d generations)\n", len(paths), opts.workers, opts.gens)
	start := time.Now()
	results, err := sweep(context.Background(), paths, opts)
	if err != nil {
		log.Fatal(err)
	}
	report(os.Stdout, results)
	fmt.Printf("\nElapsed %s\n", time.Since(start).Round(time.Millisecond))
}

// expand replaces directory arguments with the .lif files they contain.
func expand(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.lif"))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// sweep fans paths out to opts.workers goroutines. Without keepGoing the first
// failing file cancels the remaining work, including files being stepped, and
// its error is returned.
func sweep(ctx context.Context, paths []string, opts sweepOptions) ([]sweepResult, error) {
	var rules *life.RuleSet
	if opts.rule != "" {
		r, err := life.ParseRuleSet(opts.rule)
		if err != nil {
			return nil, err
		}
		rules = &r
	}
	workers := opts.workers
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan string)
	results := make(chan sweepResult)

	g.Go(func() error {
		defer close(jobs)
		for _, path := range paths {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	// results closes once every worker has returned.
	var running sync.WaitGroup
	running.Add(workers)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			defer running.Done()
			for {
				var path string
				select {
				case p, ok := <-jobs:
					if !ok {
						return nil
					}
					path = p
				case <-ctx.Done():
					return ctx.Err()
				}
				res := stepFile(ctx, path, opts.gens, rules)
				if res.err != nil && !opts.keepGoing {
					return res.err
				}
				select {
				case results <- res:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		})
	}
	go func() {
		running.Wait()
		close(results)
	}()

	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].population != all[j].population {
			return all[i].population > all[j].population
		}
		return all[i].path < all[j].path
	})
	return all, nil
}

// stepFile is the per-file job; tests replace it to observe scheduling.
var stepFile = runFile

// runFile loads and steps one file. A cancelled ctx stops it between
// generations and is reported as the result's error.
func runFile(ctx context.Context, path string, gens int, rules *life.RuleSet) sweepResult {
	start := time.Now()
	g, err := lifefile.LoadFile(path)
	if err != nil {
		return sweepResult{path: path, err: fmt.Errorf("%s: %w", path, err)}
	}
	if rules != nil {
		g.SetRules(*rules)
	}
	for i := 0; i < gens; i++ {
		if err := ctx.Err(); err != nil {
			return sweepResult{path: path, err: err}
		}
		g = life.Step(g)
	}
	b, ok := life.PatternBoundaries(g)
	return sweepResult{
		path:       path,
		population: g.Population(),
		grid:       g.Size(),
		bounds:     b,
		empty:      !ok,
		elapsed:    time.Since(start),
	}
}

func report(w io.Writer, results []sweepResult) {
	fmt.Fprintf(w, "\n%-32s %10s %9s %9s %9s %8s\n", "file", "population", "grid", "origin", "pattern", "time")
	for _, res := range results {
		name := filepath.Base(res.path)
		if res.err != nil {
			fmt.Fprintf(w, "%-32s error: %v\n", name, res.err)
			continue
		}
		origin, size := "-", "-"
		if !res.empty {
			o, s := res.bounds.Origin(), res.bounds.Size()
			origin = fmt.Sprintf("%d,%d", o.Row, o.Col)
			size = fmt.Sprintf("%dx%d", s.W, s.H)
		}
		fmt.Fprintf(w, "%-32s %10d %9s %9s %9s %8s\n", name, res.population,
			fmt.Sprintf("%dx%d", res.grid.W, res.grid.H), origin, size, res.elapsed.Round(time.Microsecond))
	}
}
