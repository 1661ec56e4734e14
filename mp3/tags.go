// Package mp3 pulls cover art out of ID3v2-tagged audio so a track can be
// shown like any other image.
package mp3

import (
	"bytes"
	"fmt"

	"github.com/bogem/id3v2"
	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"
)

// IsAudio reports whether data looks like an MP3 stream.
func IsAudio(data []byte) bool {
	kind, err := filetype.Match(data)
	return err == nil && kind.Extension == "mp3"
}

// ExtractArtwork returns the first attached picture, preferring the front
// cover when the tag carries several.
func ExtractArtwork(data []byte) ([]byte, error) {
	tag, err := id3v2.ParseReader(bytes.NewReader(data), id3v2.Options{Parse: true, ParseFrames: []string{"Attached picture"}})
	if err != nil {
		return nil, fmt.Errorf("failed to parse ID3 tag: %w", err)
	}
	defer tag.Close()

	var first []byte
	for _, f := range tag.GetFrames(tag.CommonID("Attached picture")) {
		pf, ok := f.(id3v2.PictureFrame)
		if !ok || len(pf.Picture) == 0 {
			continue
		}
		if pf.PictureType == id3v2.PTFrontCover {
			return pf.Picture, nil
		}
		if first == nil {
			first = pf.Picture
		}
	}
	if first == nil {
		return nil, fmt.Errorf("no artwork embedded")
	}
	logrus.Debug("no front cover frame, using first attached picture")
	return first, nil
}
