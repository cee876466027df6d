package timing

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMeasurePassesResultThrough(t *testing.T) {
	want := []int{1, 2, 3}
	got, sample := Measure("counts", func() []int { return want })

	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("result altered by wrapper: %v", got)
	}
	if sample.Name != "counts" {
		t.Errorf("expected sample name counts, got %s", sample.Name)
	}
	if sample.Elapsed < 0 {
		t.Errorf("expected non-negative elapsed, got %v", sample.Elapsed)
	}
}

func TestMeasureTimesTheCall(t *testing.T) {
	_, sample := Measure("sleep", func() struct{} {
		time.Sleep(10 * time.Millisecond)
		return struct{}{}
	})

	if sample.Elapsed < 10*time.Millisecond {
		t.Errorf("elapsed %v shorter than the wrapped call", sample.Elapsed)
	}
}

func TestMeasureErrPassesErrorThrough(t *testing.T) {
	sentinel := errors.New("kernel failed")
	out, _, err := MeasureErr("bad", func() (int, error) {
		return 7, sentinel
	})

	if err != sentinel {
		t.Errorf("error altered by wrapper: %v", err)
	}
	if out != 7 {
		t.Errorf("result altered by wrapper: %d", out)
	}
}

func TestRecorderReport(t *testing.T) {
	r := NewRecorder()
	r.Add(Sample{Name: "grid", Elapsed: time.Millisecond})
	r.Add(Sample{Name: "kernel", Elapsed: 2 * time.Millisecond})

	if len(r.Samples()) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(r.Samples()))
	}

	var buf bytes.Buffer
	if err := r.Report(&buf); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "grid") || !strings.Contains(out, "kernel") {
		t.Errorf("report missing sample names:\n%s", out)
	}
}
