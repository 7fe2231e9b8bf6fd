package imageio

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	captionFontOnce sync.Once
	captionFont     *opentype.Font
	captionFontErr  error
)

// loadCaptionFont parses the embedded Go Regular font once
func loadCaptionFont() (*opentype.Font, error) {
	captionFontOnce.Do(func() {
		captionFont, captionFontErr = opentype.Parse(goregular.TTF)
	})
	return captionFont, captionFontErr
}

// Caption draws text in white on a translucent dark strip along the bottom
// edge of img. The font size follows the image height.
func Caption(img *image.RGBA, text string) error {
	if text == "" {
		return nil
	}
	f, err := loadCaptionFont()
	if err != nil {
		return fmt.Errorf("caption: failed to parse font: %w", err)
	}

	bounds := img.Bounds()
	size := max(8.0, float64(bounds.Dy())/24)
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("caption: failed to create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()
	padding := max(2, lineHeight/4)

	strip := image.Rect(bounds.Min.X, bounds.Max.Y-lineHeight-2*padding, bounds.Max.X, bounds.Max.Y).Intersect(bounds)
	shade := image.NewUniform(color.RGBA{0, 0, 0, 160})
	draw.Draw(img, strip, shade, image.Point{}, draw.Over)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(bounds.Min.X + padding),
			Y: fixed.I(bounds.Max.Y-padding) - metrics.Descent,
		},
	}
	drawer.DrawString(text)
	return nil
}
