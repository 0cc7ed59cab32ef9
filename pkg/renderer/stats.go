package renderer

import (
	"image"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-ris-ltc/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	ValidSamples   int     // Samples whose camera ray hit a surface
	AverageSamples float64 // Average samples per pixel
	MaxSamples     int     // Target samples per pixel of the pass
}

// add merges the counts of another tile or pass
func (rs *RenderStats) add(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.ValidSamples += other.ValidSamples
	rs.MaxSamples = max(rs.MaxSamples, other.MaxSamples)
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
	}
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for convergence
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of the luminance estimates
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return max(0, (ps.LuminanceSqAccum-n*mean*mean)/(n-1))
}

// Summary describes an estimator's image: the mean and spread of the pixel
// luminances and the average per-sample variance
type Summary struct {
	MeanLuminance   float64
	StdDevLuminance float64
	MeanVariance    float64
}

// Summarize computes the image summary of a pixel statistics buffer
func Summarize(pixels [][]PixelStats) Summary {
	var luminances, variances []float64
	for y := range pixels {
		for x := range pixels[y] {
			ps := &pixels[y][x]
			luminances = append(luminances, ps.GetColor().Luminance())
			variances = append(variances, ps.Variance())
		}
	}
	if len(luminances) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(luminances, nil)
	return Summary{
		MeanLuminance:   mean,
		StdDevLuminance: std,
		MeanVariance:    stat.Mean(variances, nil),
	}
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an
// 8-bit image, without undoing gamma
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	luminances := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			luminances = append(luminances, (0.2126*float64(r)+0.7152*float64(g)+0.0722*float64(b))/0xffff)
		}
	}
	if len(luminances) == 0 {
		return 0
	}
	return stat.Mean(luminances, nil)
}
