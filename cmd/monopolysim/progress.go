package main

import (
	"fmt"
	"sync"
	"time"
)

// progressPrinter renders a 40-dot progress bar as trials complete. Safe for
// concurrent use by simulation workers.
type progressPrinter struct {
	mu          sync.Mutex
	dotsPrinted int
	completed   int
	startTime   time.Time
}

func newProgressPrinter() *progressPrinter {
	fmt.Print("Trials: ")
	return &progressPrinter{startTime: time.Now()}
}

// update advances the bar. Workers may report out of order, so completion is
// counted locally rather than read from the done value.
func (p *progressPrinter) update(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed++
	const dotsTotal = 40
	targetDots := p.completed * dotsTotal / total
	if targetDots > dotsTotal {
		targetDots = dotsTotal
	}
	for i := p.dotsPrinted; i < targetDots; i++ {
		fmt.Print(".")
		p.dotsPrinted++
	}

	if p.completed >= total {
		duration := time.Since(p.startTime)
		rate := float64(total) / duration.Seconds()
		fmt.Printf(" done, %d trials in %.1fs (%.0f/sec)\n", total, duration.Seconds(), rate)
	}
}
