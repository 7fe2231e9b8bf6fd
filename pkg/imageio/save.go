package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"os"
	"path/filepath"
)

// ErrWrite wraps every failure to produce an output file
var ErrWrite = errors.New("image write failed")

// SaveImage encodes img into path. The image is written to a temporary file
// in the same directory and renamed into place, so a failed save never
// leaves a partial file at path.
func SaveImage(path string, img image.Image, format Format) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := Encode(tmp, img, format); err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrWrite, format, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// LoadImage decodes an image file in any registered format (PPM, PNG,
// JPEG, BMP or TIFF)
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// MeanAbsDiff returns the mean absolute per-channel difference of two
// images in [0, 255]. Images of different size are an error.
func MeanAbsDiff(a, b image.Image) (float64, error) {
	if a.Bounds().Size() != b.Bounds().Size() {
		return 0, fmt.Errorf("image sizes differ: %v vs %v", a.Bounds().Size(), b.Bounds().Size())
	}

	ab, bb := a.Bounds(), b.Bounds()
	total := 0.0
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			r1, g1, b1, _ := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			r2, g2, b2, _ := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			total += absDiff(r1>>8, r2>>8) + absDiff(g1>>8, g2>>8) + absDiff(b1>>8, b2>>8)
		}
	}
	pixels := ab.Dx() * ab.Dy()
	if pixels == 0 {
		return 0, nil
	}
	return total / float64(3*pixels), nil
}

func absDiff(a, b uint32) float64 {
	if a > b {
		return float64(a - b)
	}
	return float64(b - a)
}
