package gallery

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProber map[string]bool

func (p fakeProber) Exists(locator string) bool {
	return p[locator]
}

func TestCatalogAddAndGet(t *testing.T) {
	c := NewCatalog(fakeProber{"/img/a.png": true})

	require.NoError(t, c.Add("a.png", "/img/a.png"))
	err := c.Add("gone.png", "/img/gone.png")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, c.Count())

	e, err := c.Get(0)
	require.NoError(t, err)
	assert.Equal(t, Entry{Name: "a.png", Locator: "/img/a.png"}, e)

	_, err = c.Get(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = c.Get(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	c.Clear()
	assert.Equal(t, 0, c.Count())
}

func TestGalleryEndToEnd(t *testing.T) {
	dec := newFakeDecoder()
	g := New[*fakeResource](fakeProber{"p1": true, "p2": true}, dec.Decode, DefaultCacheCapacity)

	require.NoError(t, g.Add("sun1.png", "p1"))
	require.NoError(t, g.Add("sun2.png", "p2"))

	first, ok := g.CurrentResource()
	require.True(t, ok)
	assert.Equal(t, "p1", first.locator)
	assert.Equal(t, "1/2", g.CounterText())

	g.OnNext()
	second, ok := g.CurrentResource()
	require.True(t, ok)
	assert.Equal(t, "p2", second.locator)
	assert.Equal(t, "2/2", g.CounterText())
	assert.Equal(t, "sun2.png", g.Caption())

	g.OnPrevious()
	again, ok := g.CurrentResource()
	require.True(t, ok)
	assert.Same(t, first, again)
	assert.Equal(t, 1, dec.calls["p1"])
	assert.Equal(t, 1, dec.calls["p2"])
}

func TestGalleryEmptyPlaceholders(t *testing.T) {
	dec := newFakeDecoder()
	g := New[*fakeResource](fakeProber{}, dec.Decode, 2)

	_, err := g.CurrentEntry()
	assert.ErrorIs(t, err, ErrEmpty)
	_, ok := g.CurrentResource()
	assert.False(t, ok)
	assert.Equal(t, NoImagesCaption, g.Caption())
	assert.Equal(t, "0/0", g.CounterText())

	g.OnNext()
	g.OnPrevious()
	assert.Equal(t, 0, g.Index())
	assert.Empty(t, dec.calls)
}

func TestGalleryDecodeFailureDegrades(t *testing.T) {
	dec := newFakeDecoder()
	dec.failing["bad"] = ErrDecodeFailure
	g := New[*fakeResource](fakeProber{"bad": true, "good": true}, dec.Decode, 2)
	require.NoError(t, g.Add("bad.png", "bad"))
	require.NoError(t, g.Add("good.png", "good"))

	_, ok := g.CurrentResource()
	assert.False(t, ok)
	assert.Equal(t, "bad.png", g.Caption())

	_, _, err := g.Load()
	assert.ErrorIs(t, err, ErrDecodeFailure)

	assert.True(t, g.Apply(Next))
	_, ok = g.CurrentResource()
	assert.True(t, ok)
	resident, _ := g.CacheStats()
	assert.Equal(t, 1, resident)
}

func TestGalleryApply(t *testing.T) {
	dec := newFakeDecoder()
	g := New[*fakeResource](fakeProber{"a": true, "b": true, "c": true}, dec.Decode, 2)
	for _, loc := range []string{"a", "b", "c"} {
		require.NoError(t, g.Add(loc, loc))
	}

	assert.False(t, g.Apply(None))
	assert.True(t, g.Apply(Previous))
	assert.Equal(t, 2, g.Index())
	assert.True(t, g.Apply(Next))
	assert.Equal(t, 0, g.Index())
}

func TestGalleryResetAll(t *testing.T) {
	dec := newFakeDecoder()
	g := New[*fakeResource](fakeProber{"a": true, "b": true, "c": true}, dec.Decode, 2)
	for _, loc := range []string{"a", "b", "c"} {
		require.NoError(t, g.Add(loc, loc))
		_, ok := g.CurrentResource()
		require.True(t, ok)
		g.OnNext()
	}
	require.Equal(t, 2, g.Index())
	_, ok := g.CurrentResource()
	require.True(t, ok)
	require.Len(t, dec.made, 3)
	require.Equal(t, 1, dec.made[0].releases)

	g.ResetAll()

	assert.Equal(t, 0, g.Count())
	assert.Equal(t, 0, g.Index())
	resident, _ := g.CacheStats()
	assert.Equal(t, 0, resident)
	for _, res := range dec.made {
		assert.Equal(t, 1, res.releases, res.locator)
	}

	g.OnNext()
	assert.Equal(t, 0, g.Index())
	assert.Equal(t, "0/0", g.CounterText())
}

func TestCatalogFileRoundTrip(t *testing.T) {
	entries := []Entry{
		{Name: "sun1.png", Locator: "/data/sun1.png"},
		{Name: "sun2.png", Locator: "/data/sun2.png"},
		{Name: "gone.png", Locator: "/data/gone.png"},
	}
	var buf bytes.Buffer
	require.NoError(t, SaveCatalog(&buf, entries))
	assert.Contains(t, buf.String(), "images:")
	assert.Contains(t, buf.String(), "path: /data/sun1.png")

	dec := newFakeDecoder()
	g := New[*fakeResource](fakeProber{"/data/sun1.png": true, "/data/sun2.png": true}, dec.Decode, 2)
	n, err := LoadCatalog(&buf, g.Add)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, entries[:2], g.Entries())
}

func TestLoadCatalogEmptyAndInvalid(t *testing.T) {
	n, err := LoadCatalog(bytes.NewBufferString(""), func(string, string) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = LoadCatalog(bytes.NewBufferString("images: [unclosed"), func(string, string) error { return nil })
	assert.Error(t, err)
}
