package coder

import (
	"github.com/mocukie/imgcmp/pkg/imagex"
	"github.com/mocukie/webp-go/webp"
	"github.com/pkg/errors"
	"image"
	"io"
	"io/ioutil"
)

const webpMagic = "RIFF????WEBP"

var webpDecodeOpts = webp.NewDecOptions()

func init() {
	webpDecodeOpts.ImageType = webp.TypeNRGBA
	imagex.RegisterFormat("webp", webpMagic, decodeWebP)
}

func decodeWebP(r io.Reader) (image.Image, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "[WebP] read failed")
	}
	img, err := webp.DecodeSlice(data, webpDecodeOpts)
	if err != nil {
		return nil, errors.Wrap(err, "[WebP] decode failed")
	}
	return img, nil
}
