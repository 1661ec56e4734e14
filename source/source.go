// Package source reads image bytes from the places a locator can point at:
// local files and http(s) URLs.
package source

import (
	"fmt"
	"strings"
)

type Source interface {
	Exists(locator string) bool
	ReadAll(locator string) ([]byte, error)
}

// Mux routes http(s) locators to Remote and everything else to Local.
type Mux struct {
	Local  Source
	Remote Source
}

func NewMux(local, remote Source) *Mux {
	return &Mux{Local: local, Remote: remote}
}

func IsRemote(locator string) bool {
	lower := strings.ToLower(locator)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func (m *Mux) pick(locator string) (Source, error) {
	if IsRemote(locator) {
		if m.Remote == nil {
			return nil, fmt.Errorf("remote locators are disabled: %s", locator)
		}
		return m.Remote, nil
	}
	return m.Local, nil
}

func (m *Mux) Exists(locator string) bool {
	src, err := m.pick(locator)
	if err != nil {
		return false
	}
	return src.Exists(locator)
}

func (m *Mux) ReadAll(locator string) ([]byte, error) {
	src, err := m.pick(locator)
	if err != nil {
		return nil, err
	}
	return src.ReadAll(locator)
}
