package tui

// SurfaceImage names the image panel for swipe origin checks.
const SurfaceImage = "image"

type Layout struct {
	WindowWidth  int
	WindowHeight int
	Breakpoints  LayoutBreakpoints
}

type LayoutBreakpoints struct {
	MinWidth  int
	MinHeight int
}

// AdaptiveLayout is the screen split for one window size. Rows from the top:
// header, bordered image panel, caption line, status bar.
type AdaptiveLayout struct {
	PanelWidth  int
	PanelHeight int

	// Image area inside the panel border, in screen cells.
	ImageX      int
	ImageY      int
	ImageWidth  int
	ImageHeight int
}

func NewLayout() *Layout {
	return &Layout{
		Breakpoints: LayoutBreakpoints{
			MinWidth:  30,
			MinHeight: 10,
		},
	}
}

func (l *Layout) Update(width, height int) {
	l.WindowWidth = width
	l.WindowHeight = height
}

func (l *Layout) Calculate() AdaptiveLayout {
	panelWidth := max(l.WindowWidth, 2)
	panelHeight := max(l.WindowHeight-3, 2)

	return AdaptiveLayout{
		PanelWidth:  panelWidth,
		PanelHeight: panelHeight,
		ImageX:      1,
		ImageY:      2,
		ImageWidth:  panelWidth - 2,
		ImageHeight: panelHeight - 2,
	}
}

func (l *Layout) IsMinimumSize() bool {
	return l.WindowWidth >= l.Breakpoints.MinWidth &&
		l.WindowHeight >= l.Breakpoints.MinHeight
}

// SurfaceAt names the interactive surface under a screen cell, or "" when
// the cell is outside every surface.
func (al AdaptiveLayout) SurfaceAt(x, y int) string {
	if x >= al.ImageX && x < al.ImageX+al.ImageWidth &&
		y >= al.ImageY && y < al.ImageY+al.ImageHeight {
		return SurfaceImage
	}
	return ""
}
