//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) fillRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *hostFramebuffer) setPixel(x, y int, r, g, b uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	pixel := rgb565(r, g, b)
	off := y*f.stride + x*2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// fbDisplayer adapts the host framebuffer to the pixel-displayer interface
// the font renderer draws against, so host and hardware share one text path.
type fbDisplayer struct {
	fb *hostFramebuffer
}

func (d fbDisplayer) Size() (int16, int16) {
	return int16(d.fb.width), int16(d.fb.height)
}

func (d fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.fb.setPixel(int(x), int(y), c.R, c.G, c.B)
}

func (d fbDisplayer) Display() error { return nil }
