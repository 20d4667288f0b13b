package imageutil

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// Local-threshold parameters: Gaussian-weighted mean over an 11x11 block,
// offset by a small constant to bias toward white in flat regions.
const (
	thresholdBlock = 11
	thresholdC     = 2.0
)

// Grayscale produces the luminance-only variant of an image. Dropping
// chroma strips the sensor noise that most often defeats detection on
// low-light camera frames.
func Grayscale(img image.Image) *image.NRGBA {
	return imaging.Grayscale(img)
}

// AdaptiveThreshold binarizes an image against a Gaussian-weighted local
// mean: a pixel becomes white when it is brighter than its neighborhood
// mean minus a small offset, black otherwise. Local thresholding recovers
// module edges under the uneven lighting and glare typical of trackside
// photographs, where a single global threshold washes out half the symbol.
// Borders are handled by edge replication. The output contains only the
// values 0 and 255.
func AdaptiveThreshold(img image.Image) *image.Gray {
	gray := toGray(img)
	mean := gaussianMean(gray, thresholdBlock)

	bounds := gray.Bounds()
	out := image.NewGray(bounds)

	w, h := bounds.Dx(), bounds.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*gray.Stride + x
			if float64(gray.Pix[i]) > mean[y*w+x]-thresholdC {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}

	return out
}

// toGray converts any image to 8-bit grayscale using the standard
// luminance weights of the image/draw color model.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

// gaussianMean computes the Gaussian-weighted neighborhood mean of every
// pixel with a separable two-pass convolution, replicating edge pixels.
func gaussianMean(gray *image.Gray, block int) []float64 {
	kernel := gaussianKernel(block)
	radius := block / 2

	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	horizontal := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sx := clamp(x+k, 0, w-1)
				sum += kernel[k+radius] * float64(gray.Pix[y*gray.Stride+sx])
			}
			horizontal[y*w+x] = sum
		}
	}

	mean := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				sy := clamp(y+k, 0, h-1)
				sum += kernel[k+radius] * horizontal[sy*w+x]
			}
			mean[y*w+x] = sum
		}
	}

	return mean
}

// gaussianKernel builds a normalized 1D Gaussian kernel of the given odd
// size, with sigma derived from the size the same way OpenCV derives it
// for its smoothing kernels.
func gaussianKernel(size int) []float64 {
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	radius := size / 2

	kernel := make([]float64, size)
	var total float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		total += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= total
	}

	return kernel
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
