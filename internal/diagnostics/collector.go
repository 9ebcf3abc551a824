package diagnostics

import (
	"fmt"
	"io"
	"sync"
)

type Collector struct {
	Diags []Diag

	mu  sync.Mutex
	out io.Writer
}

// New returns a collector that only saves diagnostics.
func New() *Collector {
	return &Collector{
		Diags: nil,
	}
}

// NewWithOutput returns a collector that also prints every diagnostic to
// out as soon as it is reported.
func NewWithOutput(out io.Writer) *Collector {
	return &Collector{
		Diags: nil,
		out:   out,
	}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	collector.mu.Lock()
	defer collector.mu.Unlock()

	if collector.out != nil {
		fmt.Fprintln(collector.out, diag.Error())
	}
	collector.Diags = append(collector.Diags, diag)
}

// Report saves err if it is a diagnostic and returns it unchanged, so a
// stage can write `return collector.Report(diag)`.
func (collector *Collector) Report(err error) error {
	if diag, ok := err.(*Diag); ok && diag != nil {
		collector.ReportAndSave(*diag)
	}
	return err
}

func (collector *Collector) HasErrors() bool {
	collector.mu.Lock()
	defer collector.mu.Unlock()
	return len(collector.Diags) > 0
}
