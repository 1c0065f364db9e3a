package coder

import (
	"bufio"
	"github.com/mocukie/imgcmp/internal/iox"
	"github.com/mocukie/imgcmp/pkg/imagex"
	"github.com/pkg/errors"
)

type Decoder interface {
	Decode(in iox.Input) (*imagex.Raster, error)
}

// Raster decodes any format known to imagex into a B, G, R raster.
type Raster struct{}

func (*Raster) Decode(in iox.Input) (*imagex.Raster, error) {
	info, err := in.Info()
	if err != nil {
		return nil, errors.WithMessagef(err, "[Raster] stat <%s> failed", in.Path())
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Errorf("[Raster] <%s> is not a regular file", in.Path())
	}

	if err := in.Open(); err != nil {
		return nil, errors.WithMessagef(err, "[Raster] open <%s> failed", in.Path())
	}
	defer in.Close()

	img, _, err := imagex.Decode(bufio.NewReader(in))
	if err != nil {
		return nil, errors.Wrapf(err, "[Raster] decode <%s> failed", in.Path())
	}
	return imagex.FromImage(img), nil
}
