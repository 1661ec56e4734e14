// Package decoder turns locators into decoded pictures for the gallery cache.
package decoder

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"solarGallery/gallery"
	"solarGallery/mp3"
	"solarGallery/source"
)

type Options struct {
	// Resize enables downscaling to MaxDimension on either axis.
	Resize       bool
	MaxDimension int
}

type Decoder struct {
	src  source.Source
	opts Options
}

func New(src source.Source, opts Options) *Decoder {
	return &Decoder{src: src, opts: opts}
}

// Decode checks the locator exists, reads it and decodes the image. MP3
// locators yield their embedded cover art.
func (d *Decoder) Decode(locator string) (*Picture, error) {
	if !d.src.Exists(locator) {
		return nil, fmt.Errorf("%s: %w", locator, gallery.ErrNotFound)
	}

	data, err := d.src.ReadAll(locator)
	if err != nil {
		return nil, err
	}

	if mp3.IsAudio(data) {
		art, err := mp3.ExtractArtwork(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", locator, err, gallery.ErrDecodeFailure)
		}
		logrus.Debugf("Using embedded artwork from %s", locator)
		data = art
	}

	return d.DecodeBytes(data)
}

func (d *Decoder) DecodeBytes(data []byte) (*Picture, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no image data: %w", gallery.ErrDecodeFailure)
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("file is not an image: %s: %w", kind.Extension, gallery.ErrDecodeFailure)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v: %w", err, gallery.ErrDecodeFailure)
	}

	bounds := img.Bounds()
	pic := &Picture{
		Image:   img,
		Format:  format,
		Encoded: data,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
	}
	if d.opts.Resize && d.opts.MaxDimension > 0 {
		pic.Image = Downscale(img, d.opts.MaxDimension, d.opts.MaxDimension)
	}
	return pic, nil
}
