package launcher

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure Printer implements the interface.
var _ driven.Browser = (*Printer)(nil)

// Printer writes each target url on its own line instead of opening it.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// ActivateTab prints the tab url.
func (p *Printer) ActivateTab(_ context.Context, _ int, url string) error {
	return p.print(url)
}

// OpenInNewTab prints url.
func (p *Printer) OpenInNewTab(_ context.Context, url string, _ bool) error {
	return p.print(url)
}

// OpenInNewWindow prints url.
func (p *Printer) OpenInNewWindow(_ context.Context, url string) error {
	return p.print(url)
}

func (p *Printer) print(url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := fmt.Fprintln(p.w, url)
	return err
}
