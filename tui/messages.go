package tui

type Mode int

const (
	ViewMode Mode = iota
	HelpMode
)

// PictureRenderedMsg carries a finished frame for the image panel.
// Generation ties it to the navigation step that requested it.
type PictureRenderedMsg struct {
	Generation int
	Result     ArtworkResult
	Info       string
}

type StatusTickMsg struct {
	Generation int
}
