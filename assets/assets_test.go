package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAssetPath(t *testing.T) {
	tests := map[string]string{
		"":                      "",
		"scarfy.png":            "scarfy.png",
		"textures/scarfy.png":   "scarfy.png",
		"./sounds/jump.wav":     "jump.wav",
		"/abs/dir/nebula.png":   "nebula.png",
		"textures/../x/far.png": "x/far.png",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanAssetPath(in), in)
	}
}

func TestReadImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 12, 4))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	fsys := fstest.MapFS{
		"strip.png":  {Data: buf.Bytes()},
		"broken.png": {Data: []byte("not a png")},
	}

	img, err := readImage(fsys, "textures/strip.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 4), img.Bounds())

	_, err = readImage(fsys, "broken.png")
	assert.Error(t, err)

	_, err = readImage(fsys, "missing.png")
	assert.Error(t, err)
}

func TestCellSize(t *testing.T) {
	w, h := cellSize(image.Rect(0, 0, 768, 128), prefabs.SpriteSpec{Columns: 6, Rows: 1})
	assert.Equal(t, 128.0, w)
	assert.Equal(t, 128.0, h)

	w, h = cellSize(image.Rect(0, 0, 800, 800), prefabs.SpriteSpec{Columns: 8, Rows: 8})
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 100.0, h)

	w, h = cellSize(image.Rect(0, 0, 256, 192), prefabs.SpriteSpec{})
	assert.Equal(t, 256.0, w)
	assert.Equal(t, 192.0, h)
}

func stubTextures(fsys fs.FS) (*Textures, *int) {
	uploads := 0
	tx := newTextures(fsys, log.New(io.Discard))
	tx.upload = func(image.Image) *ebiten.Image {
		uploads++
		return nil
	}
	return tx, &uploads
}

func TestTexturesSheetGeometryFollowsSpec(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 768, 128))))
	tx, uploads := stubTextures(fstest.MapFS{"scarfy.png": {Data: buf.Bytes()}})
	defer tx.Close()

	s, err := tx.Sheet(prefabs.SpriteSpec{Image: "textures/scarfy.png", Columns: 6, Rows: 1})
	require.NoError(t, err)
	assert.Equal(t, 128.0, s.CellWidth)
	assert.Equal(t, 128.0, s.CellHeight)
	assert.False(t, s.Placeholder)

	// Same file after a prefab reload with a different grid.
	s, err = tx.Sheet(prefabs.SpriteSpec{Image: "textures/scarfy.png", Columns: 3, Rows: 2})
	require.NoError(t, err)
	assert.Equal(t, 256.0, s.CellWidth)
	assert.Equal(t, 64.0, s.CellHeight)

	assert.Equal(t, 1, *uploads, "the file is decoded once")
}

func TestTexturesPlaceholderFollowsFallback(t *testing.T) {
	tx, uploads := stubTextures(fstest.MapFS{})
	defer tx.Close()

	spec := prefabs.SpriteSpec{
		Image:    "nebula.png",
		Columns:  8,
		Rows:     8,
		Fallback: prefabs.FallbackSpec{Width: 800, Height: 800},
	}
	s, err := tx.Sheet(spec)
	require.NoError(t, err)
	assert.True(t, s.Placeholder)
	assert.Equal(t, 100.0, s.CellWidth)

	_, err = tx.Sheet(spec)
	require.NoError(t, err)
	assert.Equal(t, 1, *uploads)

	spec.Columns = 4
	spec.Fallback.Width = 400
	s, err = tx.Sheet(spec)
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.CellWidth)
	assert.Equal(t, 100.0, s.CellHeight)
	assert.Equal(t, 2, *uploads, "a changed fallback redraws the placeholder")
}

func TestTexturesBrokenFileIsAnError(t *testing.T) {
	tx, _ := stubTextures(fstest.MapFS{"broken.png": {Data: []byte("nope")}})
	_, err := tx.Sheet(prefabs.SpriteSpec{Image: "broken.png"})
	assert.Error(t, err)
}

func TestPlaceholderImage(t *testing.T) {
	spec := prefabs.SpriteSpec{
		Columns: 4,
		Rows:    2,
		Fallback: prefabs.FallbackSpec{
			Width:  80,
			Height: 40,
			Color:  &prefabs.YAMLColor{Color: color.NRGBA{R: 200, G: 100, B: 50, A: 255}},
		},
	}
	img := placeholderImage(spec)
	require.Equal(t, image.Rect(0, 0, 80, 40), img.Bounds())

	// Cell corners stay transparent, centres are filled.
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(255), img.NRGBAAt(10, 10).A)

	first := img.NRGBAAt(10, 10)
	last := img.NRGBAAt(70, 10)
	assert.Less(t, first.R, last.R, "columns get progressively lighter")
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, last)
}

func TestPlaceholderImageDefaults(t *testing.T) {
	img := placeholderImage(prefabs.SpriteSpec{})
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	assert.Equal(t, uint8(255), img.NRGBAAt(0, 0).A)
}

func TestSoundsMissingFileIsSilent(t *testing.T) {
	s := NewSounds(t.TempDir(), nil)
	p, err := s.Player(prefabs.AudioSpec{Event: "jump", File: "jump.wav"})
	assert.NoError(t, err)
	assert.Nil(t, p)
	s.Close()
}

func TestSoundsMissingFileWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	s := NewSounds(t.TempDir(), log.New(&buf))
	defer s.Close()

	for i := 0; i < 3; i++ {
		p, err := s.Player(prefabs.AudioSpec{Event: "jump", File: "jump.wav"})
		require.NoError(t, err)
		assert.Nil(t, p)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "sound missing"))
}
