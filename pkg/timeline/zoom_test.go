package timeline

import "testing"

func TestZoomCycle(t *testing.T) {
	z := NewZoom()
	if z.Scale != ScaleDetail || z.Direction != ZoomOut {
		t.Fatalf("unexpected initial state %+v", z)
	}

	want := []Zoom{
		{Scale: ScaleMonth, Direction: ZoomOut},
		{Scale: ScaleYear, Direction: ZoomOut},
		{Scale: ScaleMonth, Direction: ZoomIn},
		{Scale: ScaleDetail, Direction: ZoomOut},
	}
	for i, expected := range want {
		z = z.Advance()
		if z != expected {
			t.Fatalf("step %d: expected %+v, got %+v", i+1, expected, z)
		}
	}

	if z != NewZoom() {
		t.Fatalf("expected the cycle to reproduce the initial state, got %+v", z)
	}
}

func TestZoomYearAlwaysCollapsesToMonthIn(t *testing.T) {
	// Direction is irrelevant while at year; both flags land on month(in).
	for _, dir := range []Direction{ZoomOut, ZoomIn} {
		z := Zoom{Scale: ScaleYear, Direction: dir}.Advance()
		if z.Scale != ScaleMonth || z.Direction != ZoomIn {
			t.Fatalf("from year(%s): expected month(zoomIn), got %+v", dir, z)
		}
	}
}

func TestZoomDetailAlwaysExpandsToMonthOut(t *testing.T) {
	for _, dir := range []Direction{ZoomOut, ZoomIn} {
		z := Zoom{Scale: ScaleDetail, Direction: dir}.Advance()
		if z.Scale != ScaleMonth || z.Direction != ZoomOut {
			t.Fatalf("from detail(%s): expected month(zoomOut), got %+v", dir, z)
		}
	}
}
