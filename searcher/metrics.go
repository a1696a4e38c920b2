package searcher

import "time"

// SearchMetrics summarizes one completed search.
type SearchMetrics struct {
	Depth    int
	Nodes    int64
	Cutoffs  int64
	Elapsed  time.Duration
	TimedOut bool
}

// collector accumulates counters for a single search. The search runs on
// one goroutine, so plain ints are enough.
type collector struct {
	startTime time.Time
	depth     int
	nodes     int64
	cutoffs   int64
}

func (c *collector) start(depth int) {
	c.startTime = time.Now()
	c.depth = depth
	c.nodes = 0
	c.cutoffs = 0
}

func (c *collector) addNode() {
	c.nodes++
}

func (c *collector) addCutoff() {
	c.cutoffs++
}

func (c *collector) complete(timedOut bool) SearchMetrics {
	return SearchMetrics{
		Depth:    c.depth,
		Nodes:    c.nodes,
		Cutoffs:  c.cutoffs,
		Elapsed:  time.Since(c.startTime),
		TimedOut: timedOut,
	}
}
