package imagex

import (
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"testing"
)

func filled(h, w int, v uint8) *Raster {
	r := NewRaster(h, w)
	for i := range r.Pix {
		r.Pix[i] = v
	}
	return r
}

func TestAbsDiff(t *testing.T) {
	t.Run("Symmetric", func(t *testing.T) {
		a := filled(2, 2, 200)
		b := filled(2, 2, 200)
		b.Set(0, 1, ChannelG, 50)
		a.Set(1, 0, ChannelR, 10)

		ab, err := AbsDiff(a, b)
		if err != nil {
			t.Fatal(err)
		}
		ba, err := AbsDiff(b, a)
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff(ab.Pix, ba.Pix); diff != "" {
			t.Errorf("AbsDiff is not symmetric (-ab +ba):\n%s", diff)
		}
		if got := ab.At(0, 1, ChannelG); got != 150 {
			t.Errorf("expected 150, got %d", got)
		}
		if got := ab.At(1, 0, ChannelR); got != 190 {
			t.Errorf("expected 190, got %d", got)
		}
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		_, err := AbsDiff(NewRaster(2, 2), NewRaster(2, 3))
		if errors.Cause(err) != ErrShapeMismatch {
			t.Errorf("expected ErrShapeMismatch, got %v", err)
		}
	})
}

func TestCountNonZero(t *testing.T) {
	if got := CountNonZero([]uint8{0, 1, 0, 255}); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := CountNonZero(nil); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestScore(t *testing.T) {
	t.Run("Identical", func(t *testing.T) {
		d, _ := AbsDiff(filled(3, 3, 7), filled(3, 3, 7))
		if got := Score(d); got != 0 {
			t.Errorf("expected 0, got %f", got)
		}
	})

	t.Run("Complete", func(t *testing.T) {
		d, _ := AbsDiff(filled(3, 3, 0), filled(3, 3, 255))
		if got := Score(d); got != 1 {
			t.Errorf("expected 1, got %f", got)
		}
	})

	t.Run("SingleSample", func(t *testing.T) {
		const h, w = 4, 5
		for _, v := range []uint8{1, 17, 128, 255} {
			a := filled(h, w, 0)
			b := filled(h, w, 0)
			b.Set(2, 3, ChannelB, v)

			d, err := AbsDiff(a, b)
			if err != nil {
				t.Fatal(err)
			}
			want := float64(v) / float64(255*h*w*3)
			if got := Score(d); got != want {
				t.Errorf("v=%d: expected %v, got %v", v, want, got)
			}
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := Score(NewRaster(0, 0)); got != 0 {
			t.Errorf("expected 0, got %f", got)
		}
	})
}
