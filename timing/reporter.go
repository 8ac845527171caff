// SPDX-License-Identifier: MIT

package timing

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reporter prints the human-readable run report. A nil-writer Reporter is not
// valid; use io.Discard to silence it.
type Reporter struct {
	w io.Writer
	p *message.Printer
}

// NewReporter returns a Reporter writing English-formatted lines to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w, p: message.NewPrinter(language.English)}
}

// Host prints the host description line.
func (r *Reporter) Host(desc string) {
	r.p.Fprintf(r.w, "Host: %s\n", desc)
}

// Workers announces the worker count and how workers are started.
func (r *Reporter) Workers(n int, mode string) {
	r.p.Fprintf(r.w, "Using %d %s workers for the parallel product.\n", n, mode)
}

// Shapes prints the operand shapes and the number of multiply-adds.
func (r *Reporter) Shapes(m, k, n int) {
	r.p.Fprintf(r.w, "A is %dx%d, B is %dx%d (%d multiply-adds)\n", m, k, k, n, m*k*n)
}

// Parallel prints the parallel elapsed time.
func (r *Reporter) Parallel(s Sample, workers int) {
	r.p.Fprintf(r.w, "Elapsed (parallel, %d workers): %.6f seconds\n", workers, s.Seconds())
}

// Sequential prints the sequential elapsed time.
func (r *Reporter) Sequential(s Sample) {
	r.p.Fprintf(r.w, "Elapsed (sequential): %.6f seconds\n", s.Seconds())
}

// Speedup prints seq/par with two decimals, or nothing when Speedup reports
// the ratio as undefined. It returns whether a line was printed.
func (r *Reporter) Speedup(seq, par Sample) bool {
	ratio, ok := Speedup(seq.Elapsed, par.Elapsed)
	if !ok {
		return false
	}
	r.p.Fprintf(r.w, "Speedup: %.2fx\n", ratio)

	return true
}

// Verified prints the outcome of the parallel/sequential comparison.
func (r *Reporter) Verified(maxAbsDiff float64) {
	r.p.Fprintf(r.w, "Verified: parallel matches sequential (max |Δ| = %g)\n", maxAbsDiff)
}
