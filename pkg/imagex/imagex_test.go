package imagex

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"io/ioutil"
	"testing"
)

func TestDecode(t *testing.T) {
	RegisterFormat("fake", "FAKE????", func(r io.Reader) (image.Image, error) {
		if _, err := ioutil.ReadAll(r); err != nil {
			return nil, err
		}
		return image.NewGray(image.Rect(0, 0, 3, 1)), nil
	})

	t.Run("RegisteredMagic", func(t *testing.T) {
		img, name, err := Decode(bytes.NewReader([]byte("FAKE1234rest")))
		if err != nil {
			t.Fatal(err)
		}
		if name != "fake" {
			t.Errorf("expected fake, got %s", name)
		}
		if img.Bounds().Dx() != 3 {
			t.Errorf("unexpected bounds %v", img.Bounds())
		}
	})

	t.Run("FallbackToImagePackage", func(t *testing.T) {
		var buf bytes.Buffer
		if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
			t.Fatal(err)
		}
		_, name, err := Decode(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if name != "png" {
			t.Errorf("expected png, got %s", name)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		if _, _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
			t.Error("expected error")
		}
	})
}
