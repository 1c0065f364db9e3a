package imagex

import (
	"fmt"
	"image"
	"image/color"
)

// Channels is the number of colour planes of a Raster, stored blue, green, red.
const Channels = 3

const (
	ChannelB = iota
	ChannelG
	ChannelR
)

type Shape struct {
	Height   int
	Width    int
	Channels int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Height, s.Width, s.Channels)
}

// Len is the number of samples in a raster of this shape.
func (s Shape) Len() int {
	return s.Height * s.Width * s.Channels
}

// Raster is a decoded image as rows of interleaved B, G, R 8-bit samples.
type Raster struct {
	Pix   []uint8
	shape Shape
}

func NewRaster(height, width int) *Raster {
	s := Shape{Height: height, Width: width, Channels: Channels}
	return &Raster{Pix: make([]uint8, s.Len()), shape: s}
}

// FromImage converts img to a Raster. Alpha is dropped without premultiplying and
// 16-bit samples keep their high byte.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := NewRaster(b.Dy(), b.Dx())
	i := 0

	switch src := img.(type) {
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := src.PixOffset(b.Min.X, y)
			for x := 0; x < b.Dx(); x++ {
				p := src.Pix[off+x*4 : off+x*4+3 : off+x*4+3]
				r.Pix[i+ChannelB] = p[2]
				r.Pix[i+ChannelG] = p[1]
				r.Pix[i+ChannelR] = p[0]
				i += Channels
			}
		}
		return r
	case *image.NRGBA64:
		// big endian samples, the high byte comes first
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := src.PixOffset(b.Min.X, y)
			for x := 0; x < b.Dx(); x++ {
				p := src.Pix[off+x*8 : off+x*8+6 : off+x*8+6]
				r.Pix[i+ChannelB] = p[4]
				r.Pix[i+ChannelG] = p[2]
				r.Pix[i+ChannelR] = p[0]
				i += Channels
			}
		}
		return r
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r.Pix[i+ChannelR], r.Pix[i+ChannelG], r.Pix[i+ChannelB] = straightRGB(img.At(x, y))
			i += Channels
		}
	}
	return r
}

// straightRGB keeps the colour of non-premultiplied values as is. Premultiplied ones
// go through NRGBA64Model, which can not restore what alpha already removed.
func straightRGB(c color.Color) (r, g, b uint8) {
	switch c := c.(type) {
	case color.NRGBA:
		return c.R, c.G, c.B
	case color.NRGBA64:
		return uint8(c.R >> 8), uint8(c.G >> 8), uint8(c.B >> 8)
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return uint8(n.R >> 8), uint8(n.G >> 8), uint8(n.B >> 8)
}

func (r *Raster) Shape() Shape {
	return r.shape
}

func (r *Raster) offset(y, x, c int) int {
	return (y*r.shape.Width+x)*r.shape.Channels + c
}

func (r *Raster) At(y, x, c int) uint8 {
	return r.Pix[r.offset(y, x, c)]
}

func (r *Raster) Set(y, x, c int, v uint8) {
	r.Pix[r.offset(y, x, c)] = v
}

// Split returns one plane per channel, in B, G, R order.
func (r *Raster) Split() [][]uint8 {
	n := r.shape.Height * r.shape.Width
	planes := make([][]uint8, r.shape.Channels)
	for c := range planes {
		planes[c] = make([]uint8, n)
	}
	for i := 0; i < n; i++ {
		for c := range planes {
			planes[c][i] = r.Pix[i*r.shape.Channels+c]
		}
	}
	return planes
}
