package prefabs

import (
	"testing"

	"github.com/milk9111/flycam/inspector"
)

func TestLoadCameraSpec(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("load camera spec: %v", err)
	}
	if spec.FlyCamera.MoveSpeed <= 0 {
		t.Fatalf("expected positive move speed, got %v", spec.FlyCamera.MoveSpeed)
	}
	if spec.Pixelation.Mode != "scale" && spec.Pixelation.Mode != "resize" {
		t.Fatalf("expected scale or resize mode, got %q", spec.Pixelation.Mode)
	}
	if spec.FlyCamera.ReleaseKey == "" {
		t.Fatalf("expected a release key")
	}
}

func TestLoadInspectorSpec(t *testing.T) {
	spec, err := LoadInspectorSpec()
	if err != nil {
		t.Fatalf("load inspector spec: %v", err)
	}

	cases := []struct {
		field    string
		op       inspector.Operator
		fallback inspector.Fallback
	}{
		{"mode", inspector.And, inspector.JustDisable},
		{"scale_factor", inspector.And, inspector.DontDraw},
		{"target_width", inspector.And, inspector.DontDraw},
		{"invert_y", inspector.Or, inspector.JustDisable},
	}
	for _, c := range cases {
		t.Run(c.field, func(t *testing.T) {
			rule, ok := spec.Rule(c.field)
			if !ok {
				t.Fatalf("expected rule for %s", c.field)
			}
			if rule.Operator != c.op || rule.Fallback != c.fallback {
				t.Fatalf("expected %v/%v, got %v/%v", c.op, c.fallback, rule.Operator, rule.Fallback)
			}
			if len(rule.Conditions) == 0 {
				t.Fatalf("expected conditions for %s", c.field)
			}
		})
	}

	if _, ok := spec.Rule("nonexistent"); ok {
		t.Fatalf("did not expect a rule for an unknown field")
	}
	if spec.Expressions["can_look"] == "" {
		t.Fatalf("expected can_look expression")
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := map[string]string{
		"":                    "",
		"camera.yaml":         "camera.yaml",
		"prefabs/camera.yaml": "camera.yaml",
	}
	for in, want := range cases {
		if got := cleanPrefabPath(in); got != want {
			t.Fatalf("cleanPrefabPath(%q): expected %q, got %q", in, want, got)
		}
	}
}
