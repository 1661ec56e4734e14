package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mitchellh/go-homedir"

	"solarGallery/gallery"
)

// File reads locators as paths on the local filesystem. A leading ~ is
// expanded to the user's home directory.
type File struct {
	MaxSize int64
}

func NewFile(maxSize int64) *File {
	return &File{MaxSize: maxSize}
}

func (f *File) resolve(locator string) string {
	if expanded, err := homedir.Expand(locator); err == nil {
		return expanded
	}
	return locator
}

func (f *File) Exists(locator string) bool {
	info, err := os.Stat(f.resolve(locator))
	return err == nil && !info.IsDir()
}

func (f *File) ReadAll(locator string) ([]byte, error) {
	path := f.resolve(locator)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file does not exist: %s: %w", locator, gallery.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", locator, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", locator, gallery.ErrNotFound)
	}
	if f.MaxSize > 0 && info.Size() > f.MaxSize {
		return nil, fmt.Errorf("%s exceeds %d bytes: %w", locator, f.MaxSize, gallery.ErrDecodeFailure)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file does not exist: %s: %w", locator, gallery.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", locator, err)
	}
	return data, nil
}
