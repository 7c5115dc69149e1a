package timeline

// Direction records which way the last zoom moved. It only matters
// while the scale is month: it decides whether the next toggle keeps
// expanding to year or collapses back to detail.
type Direction string

const (
	ZoomOut Direction = "zoomOut"
	ZoomIn  Direction = "zoomIn"
)

// Zoom tracks the current scale and zoom direction for the single
// toggle control that cycles through the three levels.
type Zoom struct {
	Scale     Scale
	Direction Direction
}

// NewZoom returns the initial zoom state.
func NewZoom() Zoom {
	return Zoom{Scale: ScaleDetail, Direction: ZoomOut}
}

// Advance computes the next state for one toggle press. The cycle is
// detail → month(out) → year → month(in) → detail.
func (z Zoom) Advance() Zoom {
	switch z.Scale {
	case ScaleDetail:
		return Zoom{Scale: ScaleMonth, Direction: ZoomOut}
	case ScaleMonth:
		if z.Direction == ZoomIn {
			return Zoom{Scale: ScaleDetail, Direction: ZoomOut}
		}
		return Zoom{Scale: ScaleYear, Direction: ZoomOut}
	case ScaleYear:
		return Zoom{Scale: ScaleMonth, Direction: ZoomIn}
	}
	return NewZoom()
}
