// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const defaultWidth = 40

// ProgressBar prints the progress of a long-running loop. Increment
// should be called once per iteration; the bar redraws itself at most
// once per percent of progress so that tight loops are not slowed down
// by terminal writes.
type ProgressBar struct {
	out       io.Writer
	width     int
	total     int
	current   int
	lastDrawn int
	startTime time.Time
}

// New returns a new ProgressBar that reaches 100% after total calls to
// Increment, writing to out
func New(out io.Writer, total int) *ProgressBar {
	return &ProgressBar{
		out:       out,
		width:     defaultWidth,
		total:     total,
		lastDrawn: -1,
		startTime: time.Now(),
	}
}

// Increment advances the bar by one iteration, redrawing it if its
// printed form would change
func (p *ProgressBar) Increment() {
	if p.current < p.total {
		p.current++
	}

	filled := p.current * p.width / p.total
	if filled == p.lastDrawn && p.current != p.total {
		return
	}
	p.lastDrawn = filled

	var bar strings.Builder
	bar.WriteString("|")
	bar.WriteString(strings.Repeat("█", filled))
	bar.WriteString(strings.Repeat(" ", p.width-filled))
	fmt.Fprintf(p.out, "\r%v| [%.0f%% | elapsed: %v]", bar.String(),
		float64(p.current)/float64(p.total)*100,
		time.Since(p.startTime).Truncate(time.Second))

	if p.current == p.total {
		fmt.Fprintln(p.out)
	}
}
