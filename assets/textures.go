package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/prefabs"
	"golang.org/x/image/colornames"
)

// Sheet is a loaded sprite sheet and the size of one cell.
type Sheet struct {
	Image       *ebiten.Image
	CellWidth   float64
	CellHeight  float64
	Placeholder bool
}

// Textures decodes each sheet file once and owns the resulting GPU images
// until Close. Cell geometry is not cached: it is derived from the spec on
// every call, so a reloaded prefab with new columns or rows takes effect.
type Textures struct {
	fsys   fs.FS
	logger *log.Logger
	upload func(image.Image) *ebiten.Image
	loaded map[string]*loadedImage
}

type loadedImage struct {
	image  *ebiten.Image
	bounds image.Rectangle
	// placeholderKey is set for generated images and records the fallback
	// geometry they were drawn for.
	placeholderKey string
}

func NewTextures(dir string, logger *log.Logger) *Textures {
	return newTextures(os.DirFS(dir), logger)
}

func newTextures(fsys fs.FS, logger *log.Logger) *Textures {
	if logger == nil {
		logger = log.Default()
	}
	return &Textures{
		fsys:   fsys,
		logger: logger,
		upload: ebiten.NewImageFromImage,
		loaded: make(map[string]*loadedImage),
	}
}

// Sheet returns the sheet described by spec. A missing file is replaced by a
// generated placeholder with the fallback geometry, regenerated whenever that
// geometry changes; a file that exists but cannot be decoded is an error.
func (t *Textures) Sheet(spec prefabs.SpriteSpec) (*Sheet, error) {
	key := cleanAssetPath(spec.Image)
	li, ok := t.loaded[key]
	if !ok || (li.placeholderKey != "" && li.placeholderKey != placeholderKey(spec)) {
		var err error
		li, err = t.load(key, spec)
		if err != nil {
			return nil, err
		}
	}

	w, h := cellSize(li.bounds, spec)
	return &Sheet{
		Image:       li.image,
		CellWidth:   w,
		CellHeight:  h,
		Placeholder: li.placeholderKey != "",
	}, nil
}

func (t *Textures) load(key string, spec prefabs.SpriteSpec) (*loadedImage, error) {
	var src image.Image
	var pkey string
	img, err := readImage(t.fsys, key)
	switch {
	case err == nil:
		src = img
	case errors.Is(err, fs.ErrNotExist):
		if _, seen := t.loaded[key]; !seen {
			t.logger.Warn("texture missing, using placeholder", "image", key)
		}
		src = placeholderImage(spec)
		pkey = placeholderKey(spec)
	default:
		return nil, err
	}

	if old, ok := t.loaded[key]; ok && old.image != nil {
		old.image.Deallocate()
	}
	li := &loadedImage{image: t.upload(src), bounds: src.Bounds(), placeholderKey: pkey}
	t.loaded[key] = li
	t.logger.Debug("texture loaded", "image", key, "size", li.bounds.Size(), "placeholder", pkey != "")
	return li, nil
}

// Close releases every loaded image. The cache is empty afterwards.
func (t *Textures) Close() {
	for key, li := range t.loaded {
		if li.image != nil {
			li.image.Deallocate()
		}
		delete(t.loaded, key)
	}
}

func placeholderKey(spec prefabs.SpriteSpec) string {
	var r, g, b, a uint32
	if c := spec.Fallback.Color; c != nil && c.Color != nil {
		r, g, b, a = c.RGBA()
	}
	return fmt.Sprintf("%dx%d/%dx%d/%x.%x.%x.%x",
		spec.Fallback.Width, spec.Fallback.Height, spec.Columns, spec.Rows, r, g, b, a)
}

func cellSize(bounds image.Rectangle, spec prefabs.SpriteSpec) (float64, float64) {
	cols, rows := spec.Columns, spec.Rows
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return float64(bounds.Dx() / cols), float64(bounds.Dy() / rows)
}

// placeholderImage draws one shaded block per cell so animation is still
// visible without art.
func placeholderImage(spec prefabs.SpriteSpec) *image.NRGBA {
	w, h := spec.Fallback.Width, spec.Fallback.Height
	if w <= 0 {
		w = 64
	}
	if h <= 0 {
		h = 64
	}
	var base color.Color = colornames.Magenta
	if spec.Fallback.Color != nil && spec.Fallback.Color.Color != nil {
		base = spec.Fallback.Color.Color
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cols, rows := spec.Columns, spec.Rows
	if cols <= 0 || rows <= 0 {
		draw.Draw(img, img.Bounds(), &image.Uniform{C: base}, image.Point{}, draw.Src)
		return img
	}

	cw, ch := w/cols, h/rows
	for c := 0; c < cols; c++ {
		shade := shadeOf(base, c, cols)
		for r := 0; r < rows; r++ {
			cell := image.Rect(c*cw, r*ch, (c+1)*cw, (r+1)*ch)
			// Leave a transparent margin so cell edges read on screen.
			inner := cell.Inset(min(cw, ch) / 8)
			draw.Draw(img, inner, &image.Uniform{C: shade}, image.Point{}, draw.Src)
		}
	}
	return img
}

func shadeOf(c color.Color, i, n int) color.NRGBA {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n <= 1 {
		return nc
	}
	f := 0.6 + 0.4*float64(i)/float64(n-1)
	return color.NRGBA{
		R: uint8(float64(nc.R) * f),
		G: uint8(float64(nc.G) * f),
		B: uint8(float64(nc.B) * f),
		A: nc.A,
	}
}
