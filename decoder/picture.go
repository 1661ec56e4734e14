package decoder

import (
	"fmt"
	"image"
)

// Picture is a decoded image owned by the gallery cache. After Release the
// pixel data and source bytes are gone and Released reports true.
type Picture struct {
	Image  image.Image
	Format string
	// Encoded holds the image bytes the picture was decoded from, for
	// renderers that hand files to the terminal.
	Encoded []byte
	// Width and Height are the dimensions before any downscaling.
	Width  int
	Height int

	released bool
}

func (p *Picture) Release() {
	p.Image = nil
	p.Encoded = nil
	p.released = true
}

func (p *Picture) Released() bool {
	return p.released
}

func (p *Picture) String() string {
	if p.released {
		return "released picture"
	}
	return fmt.Sprintf("%dx%d %s", p.Width, p.Height, p.Format)
}
