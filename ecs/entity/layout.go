package entity

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/dasher/prefabs"
)

// DefaultPositions spaces count obstacles evenly past the right window edge.
func DefaultPositions(count int, windowWidth, spacing float64) []float64 {
	if count <= 0 {
		return nil
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = windowWidth + float64(i+1)*spacing
	}
	return out
}

// NebulaPositions evaluates the nebula layout script. The script sees count,
// window_width and spacing and must leave exactly count numbers in the
// global positions.
func NebulaPositions(spec prefabs.NebulaSpec, windowWidth float64) ([]float64, error) {
	if spec.LayoutScript == "" {
		return DefaultPositions(spec.Count, windowWidth, spec.Spacing), nil
	}
	src, err := prefabs.LoadScript(spec.LayoutScript)
	if err != nil {
		return nil, fmt.Errorf("layout: load %s: %w", spec.LayoutScript, err)
	}
	return runLayout(src, spec.Count, windowWidth, spec.Spacing)
}

func runLayout(src []byte, count int, windowWidth, spacing float64) ([]float64, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("count", count); err != nil {
		return nil, err
	}
	if err := script.Add("window_width", windowWidth); err != nil {
		return nil, err
	}
	if err := script.Add("spacing", spacing); err != nil {
		return nil, err
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("layout: run: %w", err)
	}

	v := compiled.Get("positions")
	if v == nil || v.IsUndefined() {
		return nil, fmt.Errorf("layout: script did not set positions")
	}
	raw, ok := v.Value().([]any)
	if !ok {
		return nil, fmt.Errorf("layout: positions must be an array, got %T", v.Value())
	}
	if len(raw) != count {
		return nil, fmt.Errorf("layout: got %d positions, want %d", len(raw), count)
	}

	out := make([]float64, len(raw))
	for i, item := range raw {
		switch n := item.(type) {
		case float64:
			out[i] = n
		case int64:
			out[i] = float64(n)
		default:
			return nil, fmt.Errorf("layout: positions[%d] is %T, want number", i, item)
		}
	}
	return out, nil
}
