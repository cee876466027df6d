// Package timing wraps kernel invocations with wall-clock measurement.
// The wrapper is purely observational: arguments, results, and errors pass
// through unchanged.
package timing

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Sample is one named wall-clock measurement.
type Sample struct {
	Name    string
	Elapsed time.Duration
}

// Measure runs fn and returns its result together with the elapsed
// wall-clock time.
func Measure[T any](name string, fn func() T) (T, Sample) {
	start := time.Now()
	out := fn()
	return out, Sample{Name: name, Elapsed: time.Since(start)}
}

// MeasureErr is Measure for callables that can fail. The error is returned
// unchanged; the sample still reports the time spent.
func MeasureErr[T any](name string, fn func() (T, error)) (T, Sample, error) {
	start := time.Now()
	out, err := fn()
	return out, Sample{Name: name, Elapsed: time.Since(start)}, err
}

// Recorder accumulates samples across a run for reporting.
type Recorder struct {
	samples []Sample
}

func NewRecorder() *Recorder {
	return &Recorder{samples: make([]Sample, 0)}
}

func (r *Recorder) Add(s Sample) { r.samples = append(r.samples, s) }

func (r *Recorder) Samples() []Sample { return r.samples }

// Report writes the collected samples as an aligned table.
func (r *Recorder) Report(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tELAPSED")
	for _, s := range r.samples {
		fmt.Fprintf(w, "%s\t%v\n", s.Name, s.Elapsed)
	}
	return w.Flush()
}
