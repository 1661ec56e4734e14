package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"solarGallery/config"
	"solarGallery/decoder"
	"solarGallery/gallery"
	"solarGallery/importer"
	"solarGallery/source"
	"solarGallery/tui"
)

func newSource(c *config.Config) source.Source {
	return source.NewMux(
		source.NewFile(c.MaxFileSize),
		source.NewHTTP(c.HTTPTimeout, c.MaxFileSize),
	)
}

func newGallery(c *config.Config) *tui.Gallery {
	src := newSource(c)
	dec := decoder.New(src, decoder.Options{
		Resize:       c.EnableImageResize,
		MaxDimension: c.MaxDimension,
	})
	return gallery.New[*decoder.Picture](src, dec.Decode, c.CacheCapacity)
}

// populate fills g from a catalog file and then from args, where each arg is
// an image path, a folder or an http(s) URL.
func populate(c *config.Config, g *tui.Gallery, catalogPath string, args []string) error {
	if catalogPath != "" {
		f, err := os.Open(catalogPath)
		if err != nil {
			return fmt.Errorf("failed to open catalog: %w", err)
		}
		defer f.Close()
		n, err := gallery.LoadCatalog(f, g.Add)
		if err != nil {
			return err
		}
		logrus.Debugf("Loaded %d images from %s", n, catalogPath)
	}

	for _, arg := range args {
		if !source.IsRemote(arg) {
			if info, err := os.Stat(arg); err == nil && info.IsDir() {
				n, err := importer.AddFromFolder(g, arg, c.Extensions, c.RecursiveImport)
				if err != nil {
					return err
				}
				logrus.Infof("Found %d images in %s", n, arg)
				continue
			}
		}
		if err := importer.AddSingle(g, arg); err != nil {
			logrus.Warnf("Skipping %s: %v", arg, err)
		}
	}
	return nil
}
