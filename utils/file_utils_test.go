package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "sun1.png", DisplayName("/data/solar/sun1.png"))
	assert.Equal(t, "sun2.png", DisplayName(`C:\solar\sun2.png`))
	assert.Equal(t, "flare.jpg", DisplayName("https://example.org/img/flare.jpg"))
	assert.Equal(t, "plain.png", DisplayName("plain.png"))
}

func TestNormalizeExtensions(t *testing.T) {
	got := NormalizeExtensions([]string{"*.JPG", ".png", "jpeg", "jpg", " ", "*.png"})
	assert.Equal(t, []string{"jpg", "png", "jpeg"}, got)
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("a/B.PNG", DefaultExtensions))
	assert.False(t, HasExtension("a/b.gif", DefaultExtensions))
	assert.False(t, HasExtension("a/png", DefaultExtensions))
}

func TestValidateDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.png")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.NoError(t, ValidateDirectory(dir))
	assert.Error(t, ValidateDirectory(file))
	assert.Error(t, ValidateDirectory(filepath.Join(dir, "nope")))
}
