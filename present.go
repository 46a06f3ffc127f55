package pixwin

import "fmt"

// UpdateWithBuffer drains pending events and shows buf, a width*height slice
// of 0x00RRGGBB pixels. It returns once the server has drawn the frame. If
// the window is closed while events are drained, nothing is drawn and nil is
// returned; check IsOpen.
func (w *Window) UpdateWithBuffer(buf []uint32) error {
	if w.closed {
		return ErrWindowClosed
	}
	if want := w.width * w.height; len(buf) != want {
		return fmt.Errorf("%w: got %d pixels, want %d", ErrBufferSizeMismatch, len(buf), want)
	}

	w.drain()
	if w.closed {
		return nil
	}

	copy(w.pixels, buf)
	if w.scale > 1 {
		scaleInto(w.surface, w.pixels, w.width, w.height, w.scale)
	}

	if err := w.display.conn.PutImage(w.id, w.image, w.surface); err != nil {
		return err
	}
	return nil
}

// Update drains pending events without drawing.
func (w *Window) Update() error {
	if w.closed {
		return ErrWindowClosed
	}
	w.drain()
	return nil
}

func (w *Window) drain() {
	w.display.pumpEvents()
	w.input.flushEdges()
}

// scaleInto replicates each pixel of src into a scale by scale block of dst.
// dst must hold (width*scale)*(height*scale) pixels.
func scaleInto(dst, src []uint32, width, height, scale int) {
	stride := width * scale
	for y := 0; y < height; y++ {
		row := dst[y*scale*stride : (y*scale+1)*stride]
		for x, px := range src[y*width : (y+1)*width] {
			block := row[x*scale : (x+1)*scale]
			for i := range block {
				block[i] = px
			}
		}
		for r := 1; r < scale; r++ {
			copy(dst[(y*scale+r)*stride:(y*scale+r+1)*stride], row)
		}
	}
}
