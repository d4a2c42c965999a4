package pyxel

import (
	"bytes"
	"image"
	"image/png"
)

// Image is an attached layer or tile payload. Data returns the raw PNG
// bytes of the archive member. Loads produce [RawImage] values unless
// an [ImageDecoder] is configured, in which case they produce
// [DecodedImage] values.
type Image interface {
	Data() []byte
}

// RawImage is an image payload kept as undecoded PNG bytes.
type RawImage struct {
	data []byte
}

// Data returns the raw PNG bytes.
func (r RawImage) Data() []byte { return r.data }

// DecodedImage is an image payload that has been run through an
// ImageDecoder in addition to keeping the original bytes.
type DecodedImage struct {
	data []byte
	img  image.Image
}

// Data returns the raw PNG bytes.
func (d DecodedImage) Data() []byte { return d.data }

// Image returns the decoded pixels.
func (d DecodedImage) Image() image.Image { return d.img }

// ImageDecoder turns the PNG bytes of an archive member into decoded
// pixels. Implementations must treat data as untrusted input.
type ImageDecoder interface {
	Decode(data []byte) (image.Image, error)
}

// PNGDecoder is the stock ImageDecoder over image/png.
type PNGDecoder struct{}

// Decode decodes data as a PNG image.
func (PNGDecoder) Decode(data []byte) (image.Image, error) {
	return png.Decode(bytes.NewReader(data))
}
