package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is the on-disk prefab directory. Files found there shadow the embedded
// copies so values can be tuned without rebuilding.
var Dir = "prefabs"

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// Load reads a prefab such as "nebula.yaml".
func Load(name string) ([]byte, error) {
	return read(specPath(name))
}

// LoadScript reads a script; "layout.tengo" and "scripts/layout.tengo" are
// the same file.
func LoadScript(name string) ([]byte, error) {
	return read(scriptPath(name))
}

func read(rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(rel)
}

func specPath(name string) string {
	return strings.TrimPrefix(path.Clean(filepath.ToSlash(name)), "prefabs/")
}

func scriptPath(name string) string {
	return path.Join("scripts", strings.TrimPrefix(specPath(name), "scripts/"))
}
