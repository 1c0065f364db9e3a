package imagex

import (
	"github.com/pkg/errors"
)

var ErrShapeMismatch = errors.New("rasters with different shapes")

// AbsDiff returns |a - b| sample by sample.
func AbsDiff(a, b *Raster) (*Raster, error) {
	if a.Shape() != b.Shape() {
		return nil, errors.Wrapf(ErrShapeMismatch, "%v != %v", a.Shape(), b.Shape())
	}
	s := a.Shape()
	d := NewRaster(s.Height, s.Width)
	for i, v := range a.Pix {
		w := b.Pix[i]
		if v > w {
			d.Pix[i] = v - w
		} else {
			d.Pix[i] = w - v
		}
	}
	return d, nil
}

func CountNonZero(plane []uint8) int {
	n := 0
	for _, v := range plane {
		if v != 0 {
			n++
		}
	}
	return n
}

// Sum adds up every sample of every channel.
func (r *Raster) Sum() uint64 {
	var sum uint64
	for _, v := range r.Pix {
		sum += uint64(v)
	}
	return sum
}

// Score is the total absolute difference normalised by 255 * pixels * channels, so it
// lies in [0, 1]. An empty raster scores 0.
func Score(diff *Raster) float64 {
	n := diff.Shape().Len()
	if n == 0 {
		return 0
	}
	return float64(diff.Sum()) / (255 * float64(n))
}
