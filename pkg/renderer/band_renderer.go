package renderer

import (
	"image/color"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

// BandResult is the output of rendering one band
type BandResult struct {
	Index int     // Band index, used to order the final image
	Band  Band    // Rows covered by Pix
	Pix   []uint8 // RGBA pixels, row-major, 4 bytes per pixel
	Stats RenderStats
}

// BandRenderer renders whole bands against a read-only scene
type BandRenderer struct {
	scene           Scene
	camera          *geometry.Camera
	integrator      integrator.Integrator
	width, height   int
	samplesPerPixel int
}

// NewBandRenderer creates a band renderer for an image of the given size
func NewBandRenderer(scene Scene, integratorInst integrator.Integrator, width, height, samplesPerPixel int) *BandRenderer {
	return &BandRenderer{
		scene:           scene,
		camera:          scene.GetCamera(),
		integrator:      integratorInst,
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderBand renders every pixel of the band using only the given sampler.
// The same band and sampler state always produce the same pixels.
func (br *BandRenderer) RenderBand(band Band, sampler core.Sampler) BandResult {
	stride := br.width * 4
	pix := make([]uint8, band.Rows()*stride)
	stats := RenderStats{TotalPixels: band.Rows() * br.width, Bands: 1}

	for j := band.StartRow; j < band.EndRow; j++ {
		offset := (j - band.StartRow) * stride
		for i := 0; i < br.width; i++ {
			c := br.samplePixel(i, j, sampler, &stats)
			pix[offset+i*4+0] = c.R
			pix[offset+i*4+1] = c.G
			pix[offset+i*4+2] = c.B
			pix[offset+i*4+3] = c.A
		}
	}

	return BandResult{Index: band.Index, Band: band, Pix: pix, Stats: stats}
}

// samplePixel averages jittered camera rays through pixel (i, j), where j
// counts rows from the top and v grows upward
func (br *BandRenderer) samplePixel(i, j int, sampler core.Sampler, stats *RenderStats) color.RGBA {
	var ps PixelStats
	for sample := 0; sample < br.samplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		u := (float64(i) + jitter.X) / float64(br.width)
		v := (float64(br.height) - (float64(j) + jitter.Y)) / float64(br.height)

		ray := br.camera.GetRay(u, v, sampler)
		result := br.integrator.Trace(ray, br.scene, sampler)
		stats.record(result)
		ps.AddSample(result.Color)
	}
	return vec3ToColor(ps.GetColor())
}

// vec3ToColor converts a linear color to RGBA with gamma 2 correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255.99 * colorVec.X),
		G: uint8(255.99 * colorVec.Y),
		B: uint8(255.99 * colorVec.Z),
		A: 255,
	}
}
