package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

// ppmMagic is the header of plain-text PPM files
const ppmMagic = "P3"

const (
	maxPPMToken  = 20      // longest header or sample token accepted
	maxPPMPixels = 1 << 26 // largest decoded image, 64 megapixels
)

func init() {
	image.RegisterFormat("ppm", ppmMagic, DecodePPM, DecodePPMConfig)
}

// WritePPM writes img as a plain-text PPM: a "P3\n<w> <h>\n255\n" header
// followed by one "R G B" line per pixel, top row first
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", ppmMagic, bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ppmScanner reads whitespace separated tokens, skipping '#' comments
type ppmScanner struct {
	r *bufio.Reader
}

func (s *ppmScanner) token() (string, error) {
	var buf []byte
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				return string(buf), nil
			}
			return "", err
		}
		switch {
		case b == '#' && len(buf) == 0:
			if _, err := s.r.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(buf) > 0 {
				return string(buf), nil
			}
		default:
			if len(buf) == maxPPMToken {
				return "", errors.New("ppm: token too long")
			}
			buf = append(buf, b)
		}
	}
}

func (s *ppmScanner) int() (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("ppm: bad number %q", tok)
	}
	return n, nil
}

// readHeader parses magic, size and maximum channel value
func (s *ppmScanner) readHeader() (width, height, maxVal int, err error) {
	magic, err := s.token()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("ppm: reading magic: %w", err)
	}
	if magic != ppmMagic {
		return 0, 0, 0, fmt.Errorf("ppm: unsupported magic %q", magic)
	}
	if width, err = s.int(); err != nil {
		return 0, 0, 0, err
	}
	if height, err = s.int(); err != nil {
		return 0, 0, 0, err
	}
	if maxVal, err = s.int(); err != nil {
		return 0, 0, 0, err
	}
	if width <= 0 || height <= 0 || maxVal <= 0 || maxVal > 255 {
		return 0, 0, 0, fmt.Errorf("ppm: invalid header %dx%d max %d", width, height, maxVal)
	}
	if width > maxPPMPixels || height > maxPPMPixels/width {
		return 0, 0, 0, fmt.Errorf("ppm: image %dx%d too large", width, height)
	}
	return width, height, maxVal, nil
}

// DecodePPMConfig returns the dimensions of a plain-text PPM without reading pixels
func DecodePPMConfig(r io.Reader) (image.Config, error) {
	s := &ppmScanner{r: bufio.NewReader(r)}
	width, height, _, err := s.readHeader()
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: width, Height: height}, nil
}

// DecodePPM reads a plain-text PPM written by WritePPM or any P3 encoder
func DecodePPM(r io.Reader) (image.Image, error) {
	s := &ppmScanner{r: bufio.NewReader(r)}
	width, height, maxVal, err := s.readHeader()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		var rgb [3]uint8
		for ch := range rgb {
			v, err := s.int()
			if err != nil {
				return nil, fmt.Errorf("ppm: pixel %d: %w", i, err)
			}
			if v < 0 || v > maxVal {
				return nil, fmt.Errorf("ppm: pixel %d: value %d out of range", i, v)
			}
			rgb[ch] = uint8(v * 255 / maxVal)
		}
		img.Pix[i*4+0] = rgb[0]
		img.Pix[i*4+1] = rgb[1]
		img.Pix[i*4+2] = rgb[2]
		img.Pix[i*4+3] = 255
	}
	return img, nil
}
