package x11

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/bryanchriswhite/pixwin/internal/logger"
)

// Image describes how a 32-bit pixel surface is laid out on the wire.
//
// The pixels themselves stay in the caller's slice. When the server byte
// order matches the host and rows need no padding, bands are sent straight
// from that memory; otherwise each band is encoded into a scratch buffer.
type Image struct {
	Width  int
	Height int
	// Stride is the number of bytes per scanline on the wire.
	Stride int
	Depth  byte

	order          binary.ByteOrder
	direct         bool
	rowsPerRequest int
	scratch        []byte
}

// NewImage builds an image descriptor for a surface of w by h pixels.
func (c *Conn) NewImage(w, h int) (*Image, error) {
	img, err := newImage(w, h, c.screen.RootDepth, c.format, c.byteOrder, c.maxRequestBytes)
	if err != nil {
		return nil, err
	}

	logger.WithComponent("x11").Debug().
		Int("width", w).
		Int("height", h).
		Int("stride", img.Stride).
		Int("rows_per_request", img.rowsPerRequest).
		Bool("direct", img.direct).
		Msg("Created image descriptor")

	return img, nil
}

func newImage(w, h int, depth byte, format xproto.Format, order binary.ByteOrder, maxRequestBytes int) (*Image, error) {
	if w <= 0 || h <= 0 || w > 0xffff || h > 0xffff {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrImageCreation, w, h)
	}
	if format.BitsPerPixel != 32 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrImageCreation, format.BitsPerPixel)
	}

	stride := w * 4
	if pad := int(format.ScanlinePad) / 8; pad > 0 {
		stride = (stride + pad - 1) / pad * pad
	}

	rows := (maxRequestBytes - putImageHeader) / stride
	if rows < 1 {
		return nil, fmt.Errorf("%w: a %d byte scanline exceeds the %d byte request limit",
			ErrImageCreation, stride, maxRequestBytes)
	}
	if rows > h {
		rows = h
	}

	probe := []byte{1, 0}
	img := &Image{
		Width:          w,
		Height:         h,
		Stride:         stride,
		Depth:          depth,
		order:          order,
		direct:         stride == w*4 && order.Uint16(probe) == binary.NativeEndian.Uint16(probe),
		rowsPerRequest: rows,
	}
	if !img.direct {
		img.scratch = make([]byte, rows*stride)
	}
	return img, nil
}

// Bands calls fn once per request-sized band of pixels, top to bottom, with
// the wire bytes for that band. data is only valid for the duration of fn.
func (img *Image) Bands(pixels []uint32, fn func(y, rows int, data []byte)) {
	for y := 0; y < img.Height; y += img.rowsPerRequest {
		rows := min(img.rowsPerRequest, img.Height-y)
		band := pixels[y*img.Width : (y+rows)*img.Width]
		if img.direct {
			fn(y, rows, pixelBytes(band))
			continue
		}
		fn(y, rows, img.encode(band, rows))
	}
}

// encode writes rows of pixels into the scratch buffer in server byte order,
// zeroing the scanline padding.
func (img *Image) encode(band []uint32, rows int) []byte {
	data := img.scratch[:rows*img.Stride]
	for r := 0; r < rows; r++ {
		line := data[r*img.Stride : (r+1)*img.Stride]
		src := band[r*img.Width : (r+1)*img.Width]
		for i, px := range src {
			img.order.PutUint32(line[i*4:], px)
		}
		clear(line[len(src)*4:])
	}
	return data
}

func pixelBytes(p []uint32) []byte {
	if len(p) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(p))), len(p)*4)
}

// PutImage uploads pixels to win in as many requests as the server's request
// limit requires. It returns after the server has processed every band.
func (c *Conn) PutImage(win xproto.Window, img *Image, pixels []uint32) error {
	if len(pixels) != img.Width*img.Height {
		return fmt.Errorf("pixel count %d does not match %dx%d image", len(pixels), img.Width, img.Height)
	}

	cookies := make([]xproto.PutImageCookie, 0, (img.Height+img.rowsPerRequest-1)/img.rowsPerRequest)
	img.Bands(pixels, func(y, rows int, data []byte) {
		cookies = append(cookies, xproto.PutImageChecked(
			c.conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(win),
			c.xu.GC(),
			uint16(img.Width), uint16(rows),
			0, int16(y),
			0, // left pad
			img.Depth,
			data,
		))
	})

	for _, cookie := range cookies {
		if err := cookie.Check(); err != nil {
			return fmt.Errorf("failed to put image: %w", err)
		}
	}
	return nil
}
