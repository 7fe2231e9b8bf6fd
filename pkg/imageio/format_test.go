package imageio

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"out.ppm", FormatPPM, false},
		{"dir/render.PNG", FormatPNG, false},
		{"a.bmp", FormatBMP, false},
		{"a.tif", FormatTIFF, false},
		{"a.tiff", FormatTIFF, false},
		{"a.jpg", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil || format != tt.expected {
				t.Errorf("Expected %q, got %q (%v)", tt.expected, format, err)
			}
		})
	}
}

func TestEncode_DecodesBack(t *testing.T) {
	src := testImage()

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			img, name, err := image.Decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if name != string(format) {
				t.Errorf("Expected decoder %q, got %q", format, name)
			}
			diff, err := MeanAbsDiff(src, img)
			if err != nil {
				t.Fatal(err)
			}
			if diff != 0 {
				t.Errorf("Lossless format %s changed pixels (mean diff %f)", format, diff)
			}
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, testImage(), Format("gif"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.ppm")

	if err := SaveImage(path, testImage(), FormatPPM); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if diff, _ := MeanAbsDiff(testImage(), loaded); diff != 0 {
		t.Errorf("Saved image differs (mean diff %f)", diff)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected only the output file, found %d entries", len(entries))
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := fi.Mode().Perm(); perm != 0644 {
		t.Errorf("Expected mode 0644, got %#o", perm)
	}
}

func TestSaveImage_FailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing directory", func(t *testing.T) {
		err := SaveImage(filepath.Join(dir, "missing", "out.png"), testImage(), FormatPNG)
		if !errors.Is(err, ErrWrite) {
			t.Errorf("Expected ErrWrite, got %v", err)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := filepath.Join(dir, "out.gif")
		err := SaveImage(path, testImage(), Format("gif"))
		if !errors.Is(err, ErrWrite) || !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Expected ErrWrite wrapping ErrUnsupportedFormat, got %v", err)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Errorf("Expected no files after failed save, found %d", len(entries))
		}
	})
}

func TestMeanAbsDiff_SizeMismatch(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 2, 2))
	b := image.NewRGBA(image.Rect(0, 0, 3, 2))
	if _, err := MeanAbsDiff(a, b); err == nil {
		t.Error("Expected error for different sizes")
	}
}
