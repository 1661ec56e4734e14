// Package importer fills a gallery from single files or whole folders.
package importer

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"solarGallery/gallery"
	"solarGallery/utils"
)

// Adder is the part of the gallery the importer needs.
type Adder interface {
	Add(name, locator string) error
}

// AddSingle adds one image named after its file name.
func AddSingle(target Adder, path string) error {
	return target.Add(utils.DisplayName(path), path)
}

// AddFromFolder adds every file in dir whose extension is in exts, grouped by
// extension in the order given and sorted by path within a group. Files that
// vanish before they are added are skipped. It returns how many were added.
func AddFromFolder(target Adder, dir string, exts []string, recursive bool) (int, error) {
	if err := utils.ValidateDirectory(dir); err != nil {
		return 0, err
	}
	exts = utils.NormalizeExtensions(exts)
	if len(exts) == 0 {
		exts = utils.DefaultExtensions
	}

	files, err := findImageFiles(dir, recursive)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, ext := range exts {
		for _, file := range files {
			if !utils.HasExtension(file, []string{ext}) {
				continue
			}
			if err := AddSingle(target, file); err != nil {
				if errors.Is(err, gallery.ErrNotFound) {
					logrus.Debugf("Skipping vanished file %s", file)
					continue
				}
				return added, err
			}
			added++
		}
	}

	logrus.Debugf("Imported %d images from %s", added, dir)
	return added, nil
}

func findImageFiles(dir string, recursive bool) ([]string, error) {
	var files []string

	walkFunc := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() && !recursive && path != dir {
			return filepath.SkipDir
		}

		if !d.IsDir() {
			files = append(files, path)
		}

		return nil
	}

	if err := filepath.WalkDir(dir, walkFunc); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
