package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	WorldFile  = "world.yaml"
	PlayerFile = "player.yaml"
	NebulaFile = "nebula.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Specs bundles every prefab a run is built from.
type Specs struct {
	World  WorldSpec
	Player PlayerSpec
	Nebula NebulaSpec
}

// LoadAll loads and validates the world, player and nebula prefabs.
func LoadAll() (Specs, error) {
	var specs Specs
	var err error
	if specs.World, err = LoadSpec[WorldSpec](WorldFile); err != nil {
		return Specs{}, err
	}
	if specs.Player, err = LoadSpec[PlayerSpec](PlayerFile); err != nil {
		return Specs{}, err
	}
	if specs.Nebula, err = LoadSpec[NebulaSpec](NebulaFile); err != nil {
		return Specs{}, err
	}
	if err := specs.Validate(); err != nil {
		return Specs{}, err
	}
	return specs, nil
}

func (s Specs) Validate() error {
	var errs []error
	if s.World.Window.Width <= 0 || s.World.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%s: window size must be positive", WorldFile))
	}
	if err := s.Player.Sprite.validate(PlayerFile); err != nil {
		errs = append(errs, err)
	}
	if err := s.Nebula.Sprite.validate(NebulaFile); err != nil {
		errs = append(errs, err)
	}
	if err := s.Player.Animation.validate(PlayerFile, s.Player.Sprite.Columns); err != nil {
		errs = append(errs, err)
	}
	if err := s.Nebula.Animation.validate(NebulaFile, s.Nebula.Sprite.Columns); err != nil {
		errs = append(errs, err)
	}
	if s.Nebula.Count <= 0 {
		errs = append(errs, fmt.Errorf("%s: count must be positive", NebulaFile))
	}
	for i, layer := range s.World.Parallax {
		if err := layer.Sprite.validate(fmt.Sprintf("%s: parallax[%d]", WorldFile, i)); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("prefabs: invalid spec: %w", errors.Join(errs...))
}

type WorldSpec struct {
	Name     string         `yaml:"name"`
	Window   WindowSpec     `yaml:"window"`
	Gravity  float64        `yaml:"gravity"`
	Parallax []ParallaxSpec `yaml:"parallax"`
	Audio    []AudioSpec    `yaml:"audio"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type ParallaxSpec struct {
	Name        string          `yaml:"name"`
	Velocity    float64         `yaml:"velocity"`
	Scale       float64         `yaml:"scale"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	JumpImpulse float64         `yaml:"jump_impulse"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Animation   AnimationSpec   `yaml:"animation"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type NebulaSpec struct {
	Name         string          `yaml:"name"`
	Count        int             `yaml:"count"`
	Spacing      float64         `yaml:"spacing"`
	Velocity     float64         `yaml:"velocity"`
	HitboxInset  float64         `yaml:"hitbox_inset"`
	LayoutScript string          `yaml:"layout_script"`
	Sprite       SpriteSpec      `yaml:"sprite"`
	Animation    AnimationSpec   `yaml:"animation"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
}

type AudioSpec struct {
	Event  string  `yaml:"event"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

// SpriteSpec names a sheet of Columns x Rows equal cells. Fallback sizes the
// generated placeholder used when the image file is missing.
type SpriteSpec struct {
	Image    string       `yaml:"image"`
	Columns  int          `yaml:"columns"`
	Rows     int          `yaml:"rows"`
	Fallback FallbackSpec `yaml:"fallback"`
}

type FallbackSpec struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

func (s SpriteSpec) validate(owner string) error {
	if s.Image == "" {
		return fmt.Errorf("%s: sprite image is required", owner)
	}
	if s.Columns < 0 || s.Rows < 0 {
		return fmt.Errorf("%s: sprite columns/rows must not be negative", owner)
	}
	return nil
}

// AnimationSpec configures a horizontal strip. TotalFrames is the highest
// frame index, not the number of cells.
type AnimationSpec struct {
	TotalFrames   int     `yaml:"total_frames"`
	FrameInterval float64 `yaml:"frame_interval"`
	GroundedOnly  bool    `yaml:"grounded_only"`
}

func (a AnimationSpec) validate(owner string, columns int) error {
	if a.TotalFrames < 0 {
		return fmt.Errorf("%s: total_frames must not be negative", owner)
	}
	if columns > 0 && a.TotalFrames >= columns {
		return fmt.Errorf("%s: total_frames %d runs past %d columns", owner, a.TotalFrames, columns)
	}
	if a.FrameInterval <= 0 {
		return fmt.Errorf("%s: frame_interval must be positive", owner)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
