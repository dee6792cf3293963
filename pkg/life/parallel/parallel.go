// Package parallel provides a life.Backend that splits each generation into
// row bands computed on separate goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"life-ca/pkg/life"
)

// Backend computes generations across Workers goroutines. Transform returns
// only once every band is written, so callers see whole generations.
type Backend struct {
	// Workers caps the number of bands; values below 1 mean runtime.NumCPU().
	Workers int
}

// New returns a Backend with the given worker count.
func New(workers int) *Backend {
	return &Backend{Workers: workers}
}

func (b *Backend) workers() int {
	if b == nil || b.Workers < 1 {
		return runtime.NumCPU()
	}
	return b.Workers
}

// Transform implements life.Backend.
func (b *Backend) Transform(dst, src []uint8, w, h int, rules life.RuleSet, topo life.Topology) error {
	if err := life.CheckBuffers(dst, src, w, h); err != nil {
		return err
	}
	var (
		eg          errgroup.Group
		numWorkers  = min(b.workers(), max(h, 1))
		rowsPerBand = (h + numWorkers - 1) / numWorkers
	)
	for i := range numWorkers {
		startRow := i * rowsPerBand
		endRow := min(startRow+rowsPerBand, h)
		if startRow >= h {
			break
		}
		eg.Go(func() error {
			life.TransformRows(dst, src, w, h, rules, topo, startRow, endRow)
			return nil
		})
	}
	return eg.Wait()
}
