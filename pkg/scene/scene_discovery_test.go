package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"sphere-grid", "Sphere Grid"},
		{"dragon_gold", "Dragon Gold"},
		{"spheregrid", "Spheregrid"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestNew_KnownScenes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Scene %q invalid: %v", name, err)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Errorf("Scene %q has no spheres", name)
			}
		})
	}
}

func TestNew_CaseInsensitive(t *testing.T) {
	if _, err := New("Default"); err != nil {
		t.Errorf("Expected case-insensitive lookup, got %v", err)
	}
}

func TestNew_UnknownScene(t *testing.T) {
	_, err := New("cornell")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestNew_CameraOverride(t *testing.T) {
	s, err := New("default", geometry.CameraConfig{Width: 64})
	if err != nil {
		t.Fatal(err)
	}
	if s.SamplingConfig.Width != 64 || s.SamplingConfig.Height != 32 {
		t.Errorf("Expected 64x32, got %dx%d", s.SamplingConfig.Width, s.SamplingConfig.Height)
	}
}

func TestList(t *testing.T) {
	infos := List()
	if len(infos) != len(Names()) {
		t.Fatalf("Expected %d scenes, got %d", len(Names()), len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("Scenes not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
	for _, info := range infos {
		if info.DisplayName == "" || info.Width <= 0 || info.Height <= 0 || info.Samples <= 0 {
			t.Errorf("Incomplete scene info: %+v", info)
		}
	}
}
