package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"solarGallery/gallery"
)

func (a *App) handleKeyPress(key string) tea.Cmd {
	// Global
	switch key {
	case "ctrl+c", "q":
		return tea.Quit
	case "?":
		return a.toggleHelp()
	case "esc":
		return a.handleEscape()
	}

	if a.currentMode == HelpMode {
		return nil
	}

	switch key {
	case "right", "l", "n", " ", "space":
		return a.navigate(gallery.Next)
	case "left", "h", "p":
		return a.navigate(gallery.Previous)
	case "c":
		return a.resetAll()
	}

	return nil
}

// handleMouse turns a left-button press/release pair into a swipe. The press
// position decides the origin surface; drags that began elsewhere are
// discarded by the interpreter.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.currentMode != ViewMode {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		a.dragging = true
		a.dragOrigin = a.layout.Calculate().SurfaceAt(msg.X, msg.Y)
		a.dragStartX = msg.X
	case tea.MouseActionRelease:
		// Some terminals report releases without a button.
		if !a.dragging {
			return nil
		}
		drag := gallery.Drag{
			Origin: a.dragOrigin,
			StartX: float64(a.dragStartX * cellPixelWidth),
			EndX:   float64(msg.X * cellPixelWidth),
		}
		a.dragging = false
		a.dragOrigin = ""
		cmd := a.swipe.Interpret(drag)
		logrus.Debugf("swipe from %q dx=%v: %s", drag.Origin, drag.EndX-drag.StartX, cmd)
		return a.navigate(cmd)
	}
	return nil
}

func (a *App) toggleHelp() tea.Cmd {
	if a.currentMode == HelpMode {
		a.currentMode = a.previousMode
		return a.redrawKitty()
	}
	a.previousMode = a.currentMode
	a.currentMode = HelpMode
	if a.frame.IsKitty {
		if err := a.clearImages(); err != nil {
			logrus.Debugf("Failed to clear kitty images: %v", err)
		}
	}
	return nil
}

func (a *App) handleEscape() tea.Cmd {
	if a.statusMessage != "" && strings.HasPrefix(a.statusMessage, IconCross) {
		a.statusMessage = ""
		return nil
	}

	if a.currentMode == HelpMode {
		a.currentMode = a.previousMode
		return a.redrawKitty()
	}

	return nil
}

// redrawKitty re-places a kitty image that was cleared while help was shown.
func (a *App) redrawKitty() tea.Cmd {
	if !a.frame.IsKitty {
		return nil
	}
	return a.loadCurrent()
}
