package artifact

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/docker/go-units"
)

const unknownTotalStep = 1024 * 1024

// ProgressSink receives the progress of an artifact download.
type ProgressSink interface {
	// Start is called once the download size is known, total is -1 if the server did not tell.
	Start(total int64)
	Add(n int64)
	Finish()
}

// NopProgress discards progress updates.
type NopProgress struct{}

// Start ...
func (NopProgress) Start(int64) {}

// Add ...
func (NopProgress) Add(int64) {}

// Finish ...
func (NopProgress) Finish() {}

// TerminalProgress renders a progress bar on a terminal.
type TerminalProgress struct {
	out      io.Writer
	bar      progress.Model
	total    int64
	current  int64
	rendered int64
}

// NewTerminalProgress ...
func NewTerminalProgress(out io.Writer) *TerminalProgress {
	return &TerminalProgress{
		out: out,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// Start ...
func (p *TerminalProgress) Start(total int64) {
	p.total = total
	p.current = 0
	p.rendered = -1
	p.render()
}

// Add ...
func (p *TerminalProgress) Add(n int64) {
	p.current += n
	if p.shouldRender() {
		p.render()
	}
}

// Finish ...
func (p *TerminalProgress) Finish() {
	p.render()
	fmt.Fprintln(p.out)
}

func (p *TerminalProgress) shouldRender() bool {
	if p.total <= 0 {
		return p.current-p.rendered >= unknownTotalStep
	}
	// redraw on every whole percent
	return p.current*100/p.total != p.rendered*100/p.total
}

func (p *TerminalProgress) render() {
	p.rendered = p.current
	received := units.HumanSize(float64(p.current))

	if p.total <= 0 {
		fmt.Fprintf(p.out, "\rDownloading %s", received)
		return
	}

	ratio := float64(p.current) / float64(p.total)
	if ratio > 1 {
		ratio = 1
	}
	fmt.Fprintf(p.out, "\rDownloading %s %s / %s", p.bar.ViewAs(ratio), received, units.HumanSize(float64(p.total)))
}

// progressWriter forwards the number of written bytes to a ProgressSink.
type progressWriter struct {
	sink ProgressSink
}

func (w progressWriter) Write(b []byte) (int, error) {
	w.sink.Add(int64(len(b)))
	return len(b), nil
}
