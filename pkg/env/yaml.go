package env

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-joist/joist/pkg/graphics"
)

// overlay is the on-disk shape of an environment overlay file.
type overlay struct {
	Colors  map[string]string       `yaml:"colors,omitempty"`
	Floats  map[string]float64      `yaml:"floats,omitempty"`
	Insets  map[string]insetsOnDisk `yaml:"insets,omitempty"`
	Strings map[string]string       `yaml:"strings,omitempty"`
}

type insetsOnDisk struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// LoadYAML applies a YAML overlay to the environment and returns the derived
// Env. Keys must already be bound in the base environment; an overlay cannot
// invent keys no widget reads. Colors are written as "#RRGGBB" or
// "#AARRGGBB".
func LoadYAML(base *Env, data []byte) (*Env, error) {
	var o overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse env overlay: %w", err)
	}

	d := base.clone()
	for k, raw := range o.Colors {
		key := ColorKey(k)
		if _, ok := d.colors[key]; !ok {
			return nil, fmt.Errorf("env overlay: unknown color key %q", k)
		}
		c, err := graphics.ParseColor(raw)
		if err != nil {
			return nil, fmt.Errorf("env overlay: key %q: %w", k, err)
		}
		d.colors[key] = c
	}
	for k, v := range o.Floats {
		key := FloatKey(k)
		if _, ok := d.floats[key]; !ok {
			return nil, fmt.Errorf("env overlay: unknown float key %q", k)
		}
		d.floats[key] = v
	}
	for k, v := range o.Insets {
		key := InsetsKey(k)
		if _, ok := d.insets[key]; !ok {
			return nil, fmt.Errorf("env overlay: unknown insets key %q", k)
		}
		d.insets[key] = graphics.Insets{
			Left: v.Left, Top: v.Top, Right: v.Right, Bottom: v.Bottom,
		}
	}
	for k, v := range o.Strings {
		key := StringKey(k)
		if _, ok := d.strings[key]; !ok {
			return nil, fmt.Errorf("env overlay: unknown string key %q", k)
		}
		d.strings[key] = v
	}
	return d, nil
}

// LoadYAMLFile reads an overlay file if present. A missing file is not an
// error; the base environment is returned unchanged.
func LoadYAMLFile(base *Env, path string) (*Env, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read env overlay: %w", err)
	}
	return LoadYAML(base, data)
}
