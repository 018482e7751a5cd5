//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"

	"tinygo.org/x/tinyfs"
)

const (
	hostFlashDefaultPath     = "morsewatch.flash"
	hostFlashSizeBytes       = 256 * 1024
	hostFlashWriteBlockBytes = 256
	hostFlashEraseBlockBytes = 4096
)

// hostFlash is a file-backed block device so simulator settings survive
// restarts. A missing or unopenable file degrades to no storage.
type hostFlash struct {
	mu sync.Mutex
	f  *os.File
}

func newHostFlash(logger *hostLogger) *hostFlash {
	path := os.Getenv("MORSEWATCH_FLASH_PATH")
	if path == "" {
		path = hostFlashDefaultPath
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		logger.WriteLineString(fmt.Sprintf("flash: open %q: %v", path, err))
		return &hostFlash{}
	}

	st, err := f.Stat()
	if err != nil || st.Size() != hostFlashSizeBytes {
		// Fresh or truncated image: size it and fill with erased bytes.
		if err := f.Truncate(hostFlashSizeBytes); err != nil {
			logger.WriteLineString(fmt.Sprintf("flash: truncate %q: %v", path, err))
			f.Close()
			return &hostFlash{}
		}
		if st == nil || st.Size() == 0 {
			blank := make([]byte, hostFlashEraseBlockBytes)
			for i := range blank {
				blank[i] = 0xFF
			}
			for off := int64(0); off < hostFlashSizeBytes; off += int64(len(blank)) {
				f.WriteAt(blank, off)
			}
		}
	}

	return &hostFlash{f: f}
}

func (h *hostFlash) BlockDevice() tinyfs.BlockDevice {
	if h.f == nil {
		return nil
	}
	return h
}

func (h *hostFlash) ReadAt(p []byte, off int64) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.f.ReadAt(p, off)
}

func (h *hostFlash) WriteAt(p []byte, off int64) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.f.WriteAt(p, off)
}

func (h *hostFlash) Size() int64 { return hostFlashSizeBytes }

func (h *hostFlash) WriteBlockSize() int64 { return hostFlashWriteBlockBytes }

func (h *hostFlash) EraseBlockSize() int64 { return hostFlashEraseBlockBytes }

func (h *hostFlash) EraseBlocks(start, length int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	blank := make([]byte, hostFlashEraseBlockBytes)
	for i := range blank {
		blank[i] = 0xFF
	}
	for i := int64(0); i < length; i++ {
		off := (start + i) * hostFlashEraseBlockBytes
		if _, err := h.f.WriteAt(blank, off); err != nil {
			return err
		}
	}
	return nil
}
