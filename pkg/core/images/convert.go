// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package images

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// ToPlanarConfig holds the configuration returned by the ToPlanar function.
// Once configured, use Done to actually convert.
type ToPlanarConfig[T PODNumeric] struct {
	img      image.Image
	channels int
	maxValue float64
}

// ToPlanar converts an image.Image to a Planar image with one plane per channel, shaped
// `[channels, height, width]`.
//
// It returns a configuration object that can be further configured. Once set, call Done.
func ToPlanar[T PODNumeric](img image.Image) *ToPlanarConfig[T] {
	c := &ToPlanarConfig[T]{
		img:      img,
		channels: 3,
		maxValue: 1.0,
	}
	if !DTypeOf[T]().IsFloat() {
		// Use 255 for integer types.
		c.maxValue = 255.0
	}
	return c
}

// WithAlpha includes the alpha channel in the conversion, so the converted image will have 4 planes.
// The default is dropping the alpha channel.
func (c *ToPlanarConfig[T]) WithAlpha() *ToPlanarConfig[T] {
	c.channels = 4
	return c
}

// MaxValue sets the value a fully saturated channel is mapped to. It defaults to 1.0 for float dtypes
// and 255 for integer types.
func (c *ToPlanarConfig[T]) MaxValue(v float64) *ToPlanarConfig[T] {
	c.maxValue = v
	return c
}

// Done performs the conversion.
func (c *ToPlanarConfig[T]) Done() *Planar[T] {
	// imaging.Clone normalizes any image.Image to a non-premultiplied 8-bits *image.NRGBA.
	nrgba := imaging.Clone(c.img)
	size := nrgba.Bounds().Size()
	p := NewPlanar[T](c.channels, size.Y, size.X)
	scale := c.maxValue / 255.0
	isFloat := p.planeShape.DType.IsFloat()
	for y := range size.Y {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*size.X]
		for x := range size.X {
			pixelIdx := y*size.X + x
			for channel := range c.channels {
				v := float64(row[4*x+channel]) * scale
				if !isFloat {
					v = math.Round(v)
				}
				p.planes[channel][pixelIdx] = FromFloat64[T](v)
			}
		}
	}
	return p
}

// ToImageConfig holds the configuration returned by the ToImage function.
// Once configured, use Done to actually convert.
type ToImageConfig struct {
	img      Accessor
	maxValue float64
}

// ToImage converts an image shaped `[channels, height, width]` (like those created by ToPlanar) to an
// *image.NRGBA. Channels can be 1 (gray), 3 (RGB) or 4 (RGBA).
//
// Values are scaled by 255/MaxValue, rounded and clamped to [0, 255].
func ToImage(img Accessor) *ToImageConfig {
	return &ToImageConfig{img: img}
}

// MaxValue sets the value of a fully saturated channel. It defaults to 1.0 for float dtypes and 255 for
// integer types.
func (ti *ToImageConfig) MaxValue(v float64) *ToImageConfig {
	ti.maxValue = v
	return ti
}

// Done performs the conversion.
func (ti *ToImageConfig) Done() (*image.NRGBA, error) {
	shape := ti.img.Shape()
	if shape.Rank() != 3 {
		return nil, errors.Errorf("images.ToImage: invalid shape %s, it must be rank-3 `[channels, height, width]`", shape)
	}
	channels, height, width := shape.Dimensions[0], shape.Dimensions[1], shape.Dimensions[2]
	if channels != 1 && channels != 3 && channels != 4 {
		return nil, errors.Errorf("images.ToImage: invalid shape %s, with %d channels: only 1, 3 or 4 channels are supported",
			shape, channels)
	}
	maxValue := ti.maxValue
	if maxValue == 0 {
		maxValue = maxValueFor(shape.DType)
	}
	planeSize := height * width
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			pixelIdx := y*width + x
			pix := nrgba.Pix[y*nrgba.Stride+4*x : y*nrgba.Stride+4*x+4]
			pix[3] = 255 // Alpha, if not given.
			for channel := range channels {
				v := ti.img.Float64At(channel*planeSize + pixelIdx)
				v = math.Round(255 * (v / maxValue))
				v = min(max(v, 0), 255)
				if channels == 1 {
					pix[0], pix[1], pix[2] = uint8(v), uint8(v), uint8(v)
					break
				}
				pix[channel] = uint8(v)
			}
		}
	}
	return nrgba, nil
}

func maxValueFor(dtype dtypes.DType) float64 {
	if dtype.IsFloat() {
		return 1.0
	}
	return 255.0
}

// Open an image file in any format supported by github.com/disintegration/imaging.
// Use ToPlanar to convert it.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "images.Open(%q)", path)
	}
	return img, nil
}

// Load an image file as a Planar image shaped `[3, height, width]` (RGB, the alpha channel is dropped),
// using the default scaling of ToPlanar.
func Load[T PODNumeric](path string) (*Planar[T], error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return ToPlanar[T](img).Done(), nil
}

// Save an image shaped `[channels, height, width]` to path. The format is inferred from the file extension.
func Save(img Accessor, path string) error {
	nrgba, err := ToImage(img).Done()
	if err != nil {
		return err
	}
	if err = imaging.Save(nrgba, path); err != nil {
		return errors.Wrapf(err, "images.Save(%q)", path)
	}
	return nil
}
