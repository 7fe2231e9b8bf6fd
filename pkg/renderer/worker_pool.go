package renderer

import (
	"sort"
	"sync"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// resultCollector gathers band results posted by concurrent workers
type resultCollector struct {
	mu      sync.Mutex
	results []BandResult
}

func (c *resultCollector) post(result BandResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, result)
}

// sorted returns the collected results ordered by band index
func (c *resultCollector) sorted() []BandResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	sort.Slice(c.results, func(i, j int) bool {
		return c.results[i].Index < c.results[j].Index
	})
	return c.results
}

// WorkerPool runs one goroutine per band. Workers share the read-only scene
// and each owns a sampler seeded with seed + band index.
type WorkerPool struct {
	renderer  *BandRenderer
	seed      int64
	logger    core.Logger
	collector resultCollector
	wg        sync.WaitGroup
}

// NewWorkerPool creates a worker pool around a band renderer
func NewWorkerPool(renderer *BandRenderer, seed int64, logger core.Logger) *WorkerPool {
	return &WorkerPool{
		renderer: renderer,
		seed:     seed,
		logger:   logger,
	}
}

// Run renders all bands concurrently, blocks until every worker has
// finished and returns the results in band order
func (wp *WorkerPool) Run(bands []Band) []BandResult {
	wp.collector = resultCollector{results: make([]BandResult, 0, len(bands))}

	for _, band := range bands {
		wp.wg.Add(1)
		go wp.work(band, len(bands))
	}
	wp.wg.Wait()

	return wp.collector.sorted()
}

// work renders a single band and posts it to the collector
func (wp *WorkerPool) work(band Band, totalBands int) {
	defer wp.wg.Done()

	sampler := core.NewSeededSampler(bandSeed(wp.seed, band))
	result := wp.renderer.RenderBand(band, sampler)
	wp.collector.post(result)

	wp.logger.Printf("Band %d/%d done (rows %d-%d, %s samples)\n",
		band.Index+1, totalBands, band.StartRow, band.EndRow-1, formatCount(result.Stats.TotalSamples))
}

// bandSeed derives the deterministic seed for a band
func bandSeed(seed int64, band Band) int64 {
	return seed + int64(band.Index)
}
