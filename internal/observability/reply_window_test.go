package observability

import "testing"

func TestReplyStageWindowSnapshot(t *testing.T) {
	w := newReplyStageWindow(4)
	for _, ms := range []float64{10, 20, 30, 40} {
		w.Observe("match", ms)
	}
	w.ObserveIndicator("greeting")
	w.ObserveIndicator("greeting")

	snap := w.Snapshot()
	if snap.WindowSize != 4 {
		t.Fatalf("WindowSize = %d, want 4", snap.WindowSize)
	}
	if len(snap.Stages) != 1 {
		t.Fatalf("stages = %d, want 1", len(snap.Stages))
	}
	st := snap.Stages[0]
	if st.Stage != "match" || st.Samples != 4 {
		t.Fatalf("stage = %+v, want match with 4 samples", st)
	}
	if st.LastMS != 40 || st.AvgMS != 25 {
		t.Fatalf("LastMS/AvgMS = %v/%v, want 40/25", st.LastMS, st.AvgMS)
	}
	if len(snap.Indicators) != 1 || snap.Indicators[0].Name != "greeting" || snap.Indicators[0].Count != 2 {
		t.Fatalf("indicators = %+v, want greeting x2", snap.Indicators)
	}
}

func TestReplyStageWindowWrapsBuffer(t *testing.T) {
	w := newReplyStageWindow(2)
	w.Observe("match", 10)
	w.Observe("match", 20)
	w.Observe("match", 30)

	snap := w.Snapshot()
	if len(snap.Stages) != 1 {
		t.Fatalf("stages = %d, want 1", len(snap.Stages))
	}
	if snap.Stages[0].Samples != 2 {
		t.Fatalf("Samples = %d, want window cap of 2", snap.Stages[0].Samples)
	}
	if snap.Stages[0].LastMS != 30 {
		t.Fatalf("LastMS = %v, want 30", snap.Stages[0].LastMS)
	}
}

func TestQuantileInterpolates(t *testing.T) {
	samples := []float64{10, 20, 30, 40}
	if got := quantile(samples, 0.5); got != 25 {
		t.Fatalf("p50 = %v, want 25", got)
	}
	if got := quantile(samples, 0); got != 10 {
		t.Fatalf("p0 = %v, want 10", got)
	}
	if got := quantile(samples, 1); got != 40 {
		t.Fatalf("p100 = %v, want 40", got)
	}
}
