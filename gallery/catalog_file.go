package gallery

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Images []catalogFileEntry `yaml:"images"`
}

type catalogFileEntry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// SaveCatalog writes entries as a YAML list of name/path pairs.
func SaveCatalog(w io.Writer, entries []Entry) error {
	doc := catalogFile{Images: make([]catalogFileEntry, 0, len(entries))}
	for _, e := range entries {
		doc.Images = append(doc.Images, catalogFileEntry{Name: e.Name, Path: e.Locator})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}

// LoadCatalog reads a catalog written by SaveCatalog and adds each entry
// through add. Entries whose source is gone are skipped. It returns how many
// were added.
func LoadCatalog(r io.Reader, add func(name, locator string) error) (int, error) {
	var doc catalogFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to decode catalog: %w", err)
	}

	added := 0
	for _, img := range doc.Images {
		if err := add(img.Name, img.Path); err != nil {
			if errors.Is(err, ErrNotFound) {
				logrus.Debugf("Skipping missing catalog entry %s", img.Path)
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}
