package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"solarGallery/decoder"
	"solarGallery/gallery"
)

// Gallery is the gallery instantiation the viewer drives.
type Gallery = gallery.Gallery[*decoder.Picture]

// cellPixelWidth approximates a terminal cell's width in pixels; swipe
// thresholds are configured in pixels.
const cellPixelWidth = 8

// galleryOp mutates the gallery with mu held and reports whether the current
// picture has to be reloaded.
type galleryOp func() (reload bool, follow tea.Cmd)

// App is the bubbletea model for the viewer. mu serializes every call into
// the gallery: decodes run in commands off the update loop, and Update never
// waits for mu. Operations that find it taken are queued in pending until
// the decode holding it reports back.
type App struct {
	mu       *sync.Mutex
	gallery  *Gallery
	swipe    gallery.SwipeInterpreter
	renderer *ArtworkRenderer
	layout   *Layout
	theme    *Theme

	pending []galleryOp
	// clearImages deletes placed kitty images from the terminal.
	clearImages func() error

	currentMode  Mode
	previousMode Mode

	// labels captured under mu after every gallery mutation
	caption string
	counter string

	frame      ArtworkResult
	frameInfo  string
	generation int
	isLoading  bool

	dragging   bool
	dragOrigin string
	dragStartX int

	statusMessage string
	statusTimeout int
}

func NewApp(g *Gallery, swipe gallery.SwipeInterpreter, renderer *ArtworkRenderer) *App {
	a := &App{
		mu:          &sync.Mutex{},
		gallery:     g,
		swipe:       swipe,
		renderer:    renderer,
		layout:      NewLayout(),
		theme:       DefaultTheme(),
		currentMode: ViewMode,
		clearImages: clearKittyImages,
	}
	a.mu.Lock()
	a.captureLabels()
	a.mu.Unlock()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.layout.Update(msg.Width, msg.Height)
		return a, a.loadCurrent()

	case tea.KeyMsg:
		return a, a.handleKeyPress(msg.String())

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case PictureRenderedMsg:
		// mu is free again, so queued operations go first and may make
		// this frame stale.
		if next := a.flushPending(); next != nil {
			return a, next
		}
		if msg.Generation != a.generation {
			return a, nil
		}
		a.isLoading = false
		a.frame = msg.Result
		a.frameInfo = msg.Info
		if msg.Result.Error != nil {
			return a, a.setError(a.caption, msg.Result.Error.Error())
		}

	case StatusTickMsg:
		if msg.Generation == a.statusTimeout {
			a.statusMessage = ""
		}
	}
	return a, nil
}

// loadCurrent bumps the generation and returns a command that fetches and
// renders the current picture. Results from older generations are dropped.
func (a *App) loadCurrent() tea.Cmd {
	a.generation++
	gen := a.generation
	if a.layout.WindowWidth == 0 {
		return nil
	}
	a.isLoading = true
	al := a.layout.Calculate()

	return func() tea.Msg {
		a.mu.Lock()
		defer a.mu.Unlock()

		pic, _, err := a.gallery.Load()
		if err != nil {
			if errors.Is(err, gallery.ErrEmpty) {
				return PictureRenderedMsg{Generation: gen}
			}
			return PictureRenderedMsg{Generation: gen, Result: ArtworkResult{Error: err}}
		}

		// pic is only valid while mu is held, so render before returning.
		result := a.renderer.Render(pic, al.ImageWidth, al.ImageHeight, al.ImageX, al.ImageY)
		return PictureRenderedMsg{
			Generation: gen,
			Result:     result,
			Info:       pic.String(),
		}
	}
}

// captureLabels copies caption and counter out of the gallery. mu must be held.
func (a *App) captureLabels() {
	a.caption = a.gallery.Caption()
	a.counter = a.gallery.CounterText()
}

// withGallery queues op and runs the queue if mu is free.
func (a *App) withGallery(op galleryOp) tea.Cmd {
	a.pending = append(a.pending, op)
	return a.flushPending()
}

// flushPending runs queued operations in order without blocking. A single
// reload covers all of them.
func (a *App) flushPending() tea.Cmd {
	if len(a.pending) == 0 || !a.mu.TryLock() {
		return nil
	}
	ops := a.pending
	a.pending = nil

	reload := false
	var cmds []tea.Cmd
	for _, op := range ops {
		r, follow := op()
		reload = reload || r
		if follow != nil {
			cmds = append(cmds, follow)
		}
	}
	a.captureLabels()
	a.mu.Unlock()

	if reload {
		cmds = append([]tea.Cmd{a.loadCurrent()}, cmds...)
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// navigate applies a command and schedules a reload when the cursor moved.
func (a *App) navigate(cmd gallery.Command) tea.Cmd {
	return a.withGallery(func() (bool, tea.Cmd) {
		return a.gallery.Apply(cmd), nil
	})
}

func (a *App) resetAll() tea.Cmd {
	return a.withGallery(func() (bool, tea.Cmd) {
		a.gallery.ResetAll()
		if a.frame.IsKitty {
			if err := a.clearImages(); err != nil {
				logrus.Debugf("Failed to clear kitty images: %v", err)
			}
		}
		a.frame = ArtworkResult{}
		a.frameInfo = ""
		return true, a.setStatus(IconCheck+" Cleared all images", 2)
	})
}

func (a *App) setStatus(message string, seconds int) tea.Cmd {
	a.statusMessage = message
	a.statusTimeout++
	gen := a.statusTimeout
	return tea.Tick(time.Duration(seconds)*time.Second, func(time.Time) tea.Msg {
		return StatusTickMsg{Generation: gen}
	})
}

func (a *App) setError(message, details string) tea.Cmd {
	errorMsg := message
	if details != "" {
		errorMsg += ": " + details
	}
	a.statusMessage = IconCross + " " + errorMsg
	a.statusTimeout++
	return nil
}

func (a *App) View() string {
	if !a.layout.IsMinimumSize() {
		return fmt.Sprintf("Terminal too small. Minimum size: %dx%d",
			a.layout.Breakpoints.MinWidth, a.layout.Breakpoints.MinHeight)
	}

	if a.currentMode == HelpMode {
		return a.renderHelp()
	}
	return a.renderMainView(a.layout.Calculate())
}

func (a *App) renderMainView(layout AdaptiveLayout) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderHeader(),
		a.renderImagePanel(layout),
		a.renderCaption(layout.PanelWidth),
		a.renderStatusBar(layout.PanelWidth),
	)
}

func (a *App) renderHeader() string {
	title := a.theme.HeaderStyle.Render(IconSun + " solarGallery")
	resident, capacity := a.cacheStats()
	return title + a.theme.MutedTextStyle.Render(fmt.Sprintf(" cache %d/%d", resident, capacity))
}

func (a *App) cacheStats() (int, int) {
	// TryLock keeps View from blocking behind a decode in flight.
	if !a.mu.TryLock() {
		return 0, 0
	}
	defer a.mu.Unlock()
	return a.gallery.CacheStats()
}

func (a *App) renderImagePanel(layout AdaptiveLayout) string {
	var content string
	switch {
	case a.caption == gallery.NoImagesCaption:
		content = a.theme.MutedTextStyle.Render(gallery.NoImagesCaption)
	case a.isLoading && a.frame.Content == "" && !a.frame.IsKitty:
		content = a.theme.HelpStyle.Render("Loading…")
	case a.frame.Error != nil:
		content = ErrorText("Could not load image", a.theme)
	default:
		content = a.frame.Content
	}

	inner := lipgloss.Place(layout.ImageWidth, layout.ImageHeight, lipgloss.Center, lipgloss.Center, content)

	return lipgloss.NewStyle().
		Border(a.theme.PanelBorder).
		BorderForeground(ColorBorder).
		Render(inner)
}

func (a *App) renderCaption(width int) string {
	counter := a.theme.CounterStyle.Render(a.counter)
	info := ""
	if a.frameInfo != "" {
		info = a.theme.MutedTextStyle.Render("  " + a.frameInfo)
	}

	room := width - lipgloss.Width(counter) - lipgloss.Width(info) - 4
	caption := runewidth.Truncate(a.caption, max(room, 1), "…")

	return " " + counter + "  " + a.theme.CaptionStyle.Render(caption) + info
}

func (a *App) renderStatusBar(width int) string {
	theme := a.theme
	separator := theme.MutedTextStyle.Render(" │ ")

	if a.statusMessage != "" {
		if strings.HasPrefix(a.statusMessage, IconCross) {
			dismissHelp := theme.MutedTextStyle.Render(" │ Press ESC to dismiss")
			return theme.ErrorStyle.Render(runewidth.Truncate(a.statusMessage, max(width-25, 1), "…")) + dismissHelp
		}
		return theme.SuccessStyle.Render(a.statusMessage)
	}

	hints := []string{
		KeyHelp("←/h", "previous", theme),
		KeyHelp("→/l", "next", theme),
		KeyHelp("drag", "swipe", theme),
		KeyHelp("c", "clear", theme),
		KeyHelp("?", "help", theme),
		KeyHelp("q", "quit", theme),
	}
	return strings.Join(hints, separator)
}

func (a *App) renderHelp() string {
	return `╔══════════════════════════════════════════════╗
║              solarGallery Help               ║
╠══════════════════════════════════════════════╣
║ Navigation:                                  ║
║   →, l, n, Space   Next image                ║
║   ←, h, p          Previous image            ║
║   Drag left        Next image                ║
║   Drag right       Previous image            ║
║                                              ║
║ Gallery:                                     ║
║   c                Clear all images          ║
║                                              ║
║ Global:                                      ║
║   ?                Show/hide this help       ║
║   Esc              Dismiss error / help      ║
║   q, Ctrl+C        Quit                      ║
╚══════════════════════════════════════════════╝

Press esc to return...`
}

func initLogging() error {
	logDir := filepath.Join(os.TempDir(), "solarGallery")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}
	logFile := filepath.Join(logDir, "viewer.log")
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logrus.SetOutput(f)
	logrus.WithField("ts", time.Now().Format(time.RFC3339)).Info("viewer session start")
	return nil
}

// Run shows the gallery until the user quits, then releases everything it
// holds.
func Run(g *Gallery, swipe gallery.SwipeInterpreter, renderer *ArtworkRenderer) error {
	if err := initLogging(); err != nil {
		return err
	}

	app := NewApp(g, swipe, renderer)
	defer func() {
		app.mu.Lock()
		defer app.mu.Unlock()
		g.ResetAll()
	}()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()

	return err
}
