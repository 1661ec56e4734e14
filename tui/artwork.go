package tui

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"solarGallery/decoder"
)

const (
	RenderAuto   = "auto"
	RenderBlocks = "blocks"
	RenderKitty  = "kitty"
)

type ArtworkRenderer struct {
	useKitty bool
}

type ArtworkResult struct {
	Content string
	IsKitty bool
	Error   error
}

func NewArtworkRenderer(mode string) *ArtworkRenderer {
	useKitty := false
	switch mode {
	case RenderKitty:
		useKitty = true
	case RenderAuto, "":
		useKitty = isKittySupported()
	}
	return &ArtworkRenderer{useKitty: useKitty}
}

// Render draws pic into a width x height cell box whose top-left corner sits
// at screen cell (xPos, yPos).
func (ar *ArtworkRenderer) Render(pic *decoder.Picture, width, height, xPos, yPos int) ArtworkResult {
	if pic == nil || pic.Released() || pic.Image == nil {
		return ArtworkResult{Content: "No image"}
	}
	if width <= 0 || height <= 0 {
		return ArtworkResult{}
	}

	if ar.useKitty && len(pic.Encoded) > 0 {
		result := ar.renderWithKittyIcatAt(pic.Encoded, width, height, xPos, yPos)
		if result.Error == nil {
			return result
		}
		logrus.Debugf("kitty render failed, falling back to blocks: %v", result.Error)
	}

	return ArtworkResult{Content: HalfBlocks(pic.Image, width, height)}
}

// HalfBlocks draws img with upper-half-block characters, two pixel rows per
// terminal row, scaled to fit width x height cells.
func HalfBlocks(img image.Image, width, height int) string {
	b := img.Bounds()
	w, h := decoder.Fit(b.Dx(), b.Dy(), width, height*2)
	if w <= 0 || h <= 0 {
		return ""
	}
	scaled := decoder.Scale(img, w, h)

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(scaled, x, y))
			if y+1 < h {
				style = style.Background(hexColor(scaled, x, y+1))
			}
			sb.WriteString(style.Render("▀"))
		}
	}
	return sb.String()
}

func hexColor(img *image.RGBA, x, y int) lipgloss.Color {
	c := img.RGBAAt(x, y)
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

func (ar *ArtworkRenderer) renderWithKittyIcatAt(data []byte, width, height, xPos, yPos int) ArtworkResult {
	if err := clearKittyImages(); err != nil {
		logrus.Debugf("Failed to clear kitty images: %v", err)
	}

	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("solargallery-%d.img", time.Now().UnixNano()))
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return ArtworkResult{Content: "Failed to create temp file", Error: err}
	}
	defer os.Remove(tmpFile)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	placeArg := fmt.Sprintf("--place=%dx%d@%dx%d", width, height, xPos, yPos)
	cmd := exec.CommandContext(ctx, "kitty", "+kitten", "icat",
		"--transfer-mode=file",
		"--scale-up",
		"--z-index=-1",
		placeArg,
		tmpFile,
	)

	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return ArtworkResult{Error: fmt.Errorf("failed to open /dev/tty: %w", err)}
	}
	defer tty.Close()

	var stderr bytes.Buffer
	cmd.Stdout = tty
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return ArtworkResult{Error: fmt.Errorf("kitty +kitten icat timed out")}
		}
		errMsg := stderr.String()
		if errMsg == "" {
			errMsg = err.Error()
		}
		return ArtworkResult{Error: fmt.Errorf("kitty +kitten icat failed: %s", errMsg)}
	}

	return ArtworkResult{IsKitty: true}
}

func clearKittyImages() error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open /dev/tty: %w", err)
	}
	defer tty.Close()

	if _, err := tty.Write([]byte("\x1b_Ga=d,d=A\x1b\\")); err != nil {
		return fmt.Errorf("failed to write delete command: %w", err)
	}
	return nil
}

func isKittySupported() bool {
	if os.Getenv("SOLARGALLERY_DISABLE_KITTY") == "1" {
		return false
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "kitty") {
		return true
	}

	termProgram := os.Getenv("TERM_PROGRAM")
	if termProgram == "kitty" || termProgram == "WezTerm" {
		return true
	}

	return os.Getenv("KITTY_WINDOW_ID") != ""
}
