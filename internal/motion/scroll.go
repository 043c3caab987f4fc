package motion

const (
	BackToTopOffset   = 300
	NavbarSolidOffset = 50
)

// ScrollThreshold toggles a boolean once the vertical scroll offset, in
// CSS pixels, passes Offset.
type ScrollThreshold struct {
	Offset int
}

var (
	BackToTop   = ScrollThreshold{Offset: BackToTopOffset}
	NavbarSolid = ScrollThreshold{Offset: NavbarSolidOffset}
)

// Visible reports whether scrollY is strictly past the threshold.
func (s ScrollThreshold) Visible(scrollY float64) bool {
	return scrollY > float64(s.Offset)
}

// Progress returns offset as a fraction of maxOffset, the furthest the page
// can scroll, clamped to 0..1. A page that cannot scroll reports 0.
func Progress(offset, maxOffset float64) float64 {
	if maxOffset <= 0 || offset <= 0 {
		return 0
	}
	if offset >= maxOffset {
		return 1
	}
	return offset / maxOffset
}
