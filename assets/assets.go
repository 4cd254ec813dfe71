package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// readImage decodes an image from fsys by a slash-separated path.
func readImage(fsys fs.FS, name string) (image.Image, error) {
	b, err := fs.ReadFile(fsys, cleanAssetPath(name))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	return img, nil
}

// cleanAssetPath turns a prefab-relative path into an fs.FS name. Absolute
// paths and textures/ or sounds/ prefixes are reduced to the bare file name.
func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return filepath.Base(p)
	}
	s := path.Clean(filepath.ToSlash(p))
	for _, prefix := range []string{"textures/", "sounds/", "./"} {
		s = strings.TrimPrefix(s, prefix)
	}
	return s
}
