package imagex

import (
	"bufio"
	"image"
	"io"
	"sync"
	"sync/atomic"
)

var (
	formats     atomic.Value
	formatsLock sync.Mutex
)

type format struct {
	name, magic string
	decode      func(io.Reader) (image.Image, error)
}

// RegisterFormat registers a decoder that takes precedence over the formats known to
// the image package. '?' in magic matches any byte.
func RegisterFormat(name, magic string, decode func(io.Reader) (image.Image, error)) {
	formatsLock.Lock()
	tmp, _ := formats.Load().([]format)
	formats.Store(append(tmp, format{name, magic, decode}))
	formatsLock.Unlock()
}

type reader interface {
	io.Reader
	Peek(int) ([]byte, error)
}

func asReader(r io.Reader) reader {
	if rr, ok := r.(reader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

func match(header []byte, magic string) bool {
	if len(header) != len(magic) {
		return false
	}
	for i, b := range header {
		if magic[i] != b && magic[i] != '?' {
			return false
		}
	}
	return true
}

func Decode(r io.Reader) (image.Image, string, error) {
	rr := asReader(r)
	tmp, _ := formats.Load().([]format)
	for _, f := range tmp {
		header, err := rr.Peek(len(f.magic))
		if err == nil && match(header, f.magic) {
			img, e := f.decode(rr)
			return img, f.name, e
		}
	}
	return image.Decode(rr)
}
