package codec

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/tiff"

	"github.com/ironsheep/imgcore/pix"
)

// ErrConversion reports an adapter-layer codec failure: a file that cannot
// be decoded or an image that cannot be encoded. The core's numeric and
// color conversions are total and never raise it.
var ErrConversion = errors.New("codec conversion failed")

// Open decodes the image file at path into an 8-bit image. Sources with an
// alpha channel produce an RGBA image, grayscale sources a Gray image, and
// everything else RGB.
func Open(path string) (*pix.Image[uint8], error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w: %w", path, ErrConversion, err)
	}
	return FromImage(img), nil
}

// Decode reads one encoded image from r using the registered stdlib
// decoders.
func Decode(r io.Reader) (*pix.Image[uint8], error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w: %w", ErrConversion, err)
	}
	return FromImage(img), nil
}

// Open16 decodes the image file at path into a 16-bit RGBA image,
// preserving the full depth of 16-bit sources.
func Open16(path string) (*pix.Image[uint16], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w: %w", path, ErrConversion, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w: %w", path, ErrConversion, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out, err := pix.New[uint16](w, h, pix.RGBA)
	if err != nil {
		return nil, err
	}
	data := out.Data()
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			data[i+0] = uint16(r)
			data[i+1] = uint16(g)
			data[i+2] = uint16(b)
			data[i+3] = uint16(a)
			i += 4
		}
	}
	return out, nil
}

// FromImage converts a decoded stdlib image into an 8-bit pix image.
// Grayscale inputs keep the Gray model; NRGBA keeps straight alpha; other
// types go through the premultiplied RGBA() accessor.
func FromImage(img image.Image) *pix.Image[uint8] {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		out, _ := pix.New[uint8](w, h, pix.Gray)
		data := out.Data()
		for y := 0; y < h; y++ {
			copy(data[y*w:(y+1)*w], src.Pix[y*src.Stride:])
		}
		return out
	case *image.NRGBA:
		out, _ := pix.New[uint8](w, h, pix.RGBA)
		data := out.Data()
		for y := 0; y < h; y++ {
			copy(data[y*w*4:(y+1)*w*4], src.Pix[y*src.Stride:])
		}
		return out
	}

	out, _ := pix.New[uint8](w, h, pix.RGBA)
	data := out.Data()
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			data[i+0] = uint8(r >> 8)
			data[i+1] = uint8(g >> 8)
			data[i+2] = uint8(b >> 8)
			data[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return out
}

// ToImage converts a pix image of any numeric type into a stdlib image for
// encoding or display. Gray maps to *image.Gray, RGBA to *image.NRGBA, and
// other models are reduced to RGB before encoding.
func ToImage[T pix.Value](im *pix.Image[T]) image.Image {
	w, h := im.Width(), im.Height()

	switch im.Model() {
	case pix.Gray:
		out := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetGray(x, y, color.Gray{Y: pix.Denorm[uint8](im.NormAt(x, y, 0))})
			}
		}
		return out
	case pix.RGBA:
		out := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := out.PixOffset(x, y)
				for c := 0; c < 4; c++ {
					out.Pix[i+c] = pix.Denorm[uint8](im.NormAt(x, y, c))
				}
			}
		}
		return out
	case pix.RGB:
		// handled below
	default:
		return ToImage(im.Convert(pix.RGB))
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := out.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				out.Pix[i+c] = pix.Denorm[uint8](im.NormAt(x, y, c))
			}
			out.Pix[i+3] = 0xff
		}
	}
	return out
}

// Encode writes the image to w in the named format (jpg, png, gif, tif,
// bmp). Unknown format names fail with ErrConversion.
func Encode[T pix.Value](w io.Writer, im *pix.Image[T], format string) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("encode %q: %w: %w", format, ErrConversion, err)
	}
	if err := imaging.Encode(w, ToImage(im), f); err != nil {
		return fmt.Errorf("encode %q: %w: %w", format, ErrConversion, err)
	}
	return nil
}

// Save encodes the image to path, choosing the format from the file
// extension (jpg, png, gif, tif, bmp).
func Save[T pix.Value](im *pix.Image[T], path string) error {
	if err := imaging.Save(ToImage(im), path); err != nil {
		return fmt.Errorf("save %q: %w: %w", path, ErrConversion, err)
	}
	return nil
}

// SaveTIFF16 writes the image as an uncompressed 16-bit TIFF, preserving
// depth the 8-bit encoders would discard. Gray images write Gray16,
// everything else NRGBA64 (reduced to RGB first when needed).
func SaveTIFF16[T pix.Value](im *pix.Image[T], path string) error {
	w, h := im.Width(), im.Height()

	var img image.Image
	switch im.Model() {
	case pix.Gray:
		out := image.NewGray16(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetGray16(x, y, color.Gray16{Y: pix.Denorm[uint16](im.NormAt(x, y, 0))})
			}
		}
		img = out
	case pix.RGBA, pix.RGB:
		img = toNRGBA64(im)
	default:
		img = toNRGBA64(im.Convert(pix.RGB))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %q: %w: %w", path, ErrConversion, err)
	}
	defer f.Close()
	if err := tiff.Encode(f, img, nil); err != nil {
		return fmt.Errorf("save %q: %w: %w", path, ErrConversion, err)
	}
	return nil
}

func toNRGBA64[T pix.Value](im *pix.Image[T]) *image.NRGBA64 {
	w, h := im.Width(), im.Height()
	alpha := im.Model().AlphaIndex()
	out := image.NewNRGBA64(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA64{
				R: pix.Denorm[uint16](im.NormAt(x, y, 0)),
				G: pix.Denorm[uint16](im.NormAt(x, y, 1)),
				B: pix.Denorm[uint16](im.NormAt(x, y, 2)),
				A: 0xffff,
			}
			if alpha >= 0 {
				c.A = pix.Denorm[uint16](im.NormAt(x, y, alpha))
			}
			out.SetNRGBA64(x, y, c)
		}
	}
	return out
}
