package prefabs

import (
	"fmt"
	"os"

	"github.com/milk9111/flycam/inspector"
	"gopkg.in/yaml.v3"
)

const (
	CameraFile    = "camera.yaml"
	InspectorFile = "inspector.yaml"
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

// SaveSpec writes spec to the on-disk override of filename.
func SaveSpec[T any](filename string, spec T) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("prefabs: marshal %s: %w", filename, err)
	}
	if err := os.WriteFile(DiskPath(filename), data, 0o644); err != nil {
		return fmt.Errorf("prefabs: write %s: %w", filename, err)
	}
	return nil
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type FlyCameraSpec struct {
	MoveSpeed   float64 `yaml:"move_speed"`
	Sensitivity float64 `yaml:"sensitivity"`
	InvertY     bool    `yaml:"invert_y"`
	UpKey       string  `yaml:"up_key"`
	DownKey     string  `yaml:"down_key"`
	ReleaseKey  string  `yaml:"release_key"`
}

type PixelationSpec struct {
	Enabled      bool   `yaml:"enabled"`
	Mode         string `yaml:"mode"`
	ScaleFactor  int    `yaml:"scale_factor"`
	TargetWidth  int    `yaml:"target_width"`
	TargetHeight int    `yaml:"target_height"`
}

type CameraSpec struct {
	Name       string         `yaml:"name"`
	Transform  TransformSpec  `yaml:"transform"`
	FlyCamera  FlyCameraSpec  `yaml:"fly_camera"`
	Pixelation PixelationSpec `yaml:"pixelation"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// FieldRuleSpec attaches a visibility rule to one inspector field.
type FieldRuleSpec struct {
	Field string         `yaml:"field"`
	Rule  inspector.Rule `yaml:",inline"`
}

type InspectorSpec struct {
	Fields []FieldRuleSpec `yaml:"fields"`
	// Expressions are named tengo conditions over the camera fields.
	Expressions map[string]string `yaml:"expressions"`
}

func LoadInspectorSpec() (*InspectorSpec, error) {
	spec, err := LoadSpec[InspectorSpec](InspectorFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Rule returns the rule for field, if one is configured.
func (s *InspectorSpec) Rule(field string) (inspector.Rule, bool) {
	if s == nil {
		return inspector.Rule{}, false
	}
	for _, f := range s.Fields {
		if f.Field == field {
			return f.Rule, true
		}
	}
	return inspector.Rule{}, false
}
