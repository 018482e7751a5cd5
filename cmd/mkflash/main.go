//go:build !tinygo

// Command mkflash builds a littlefs flash image preloaded with a settings
// record. The simulator and hardware flashing scripts both consume the
// resulting file, so a watch can boot straight into known settings.
package main

import (
	"flag"
	"fmt"
	"os"

	"morsewatch/settings"
)

const (
	defaultFlashPath = "morsewatch.flash"
	defaultFlashSize = 256 * 1024
	writeBlockSize   = 256
	eraseBlockSize   = 4096
)

// flashFile is a file-backed block device for image building. Writes go
// straight through; erases rewrite whole blocks with 0xFF.
type flashFile struct {
	f    *os.File
	size int64
}

func openFlashFile(path string, size int64) (*flashFile, error) {
	if size <= 0 || size%eraseBlockSize != 0 {
		return nil, fmt.Errorf("flash: size %d not a multiple of erase size %d", size, eraseBlockSize)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open flash image %q: %w", path, err)
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, fmt.Errorf("truncate flash image %q to %d: %w", path, size, err)
	}

	ff := &flashFile{f: f, size: size}
	if err := ff.EraseBlocks(0, size/eraseBlockSize); err != nil {
		f.Close()
		return nil, fmt.Errorf("blank flash image %q: %w", path, err)
	}
	return ff, nil
}

func (ff *flashFile) Close() error { return ff.f.Close() }

func (ff *flashFile) ReadAt(p []byte, off int64) (int, error)  { return ff.f.ReadAt(p, off) }
func (ff *flashFile) WriteAt(p []byte, off int64) (int, error) { return ff.f.WriteAt(p, off) }

func (ff *flashFile) Size() int64           { return ff.size }
func (ff *flashFile) WriteBlockSize() int64 { return writeBlockSize }
func (ff *flashFile) EraseBlockSize() int64 { return eraseBlockSize }

func (ff *flashFile) EraseBlocks(start, length int64) error {
	blank := make([]byte, eraseBlockSize)
	for i := range blank {
		blank[i] = 0xFF
	}
	for i := int64(0); i < length; i++ {
		if _, err := ff.f.WriteAt(blank, (start+i)*eraseBlockSize); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var outPath string
	var flashSize int64
	var activeFace uint
	var longPressMs uint
	var timeoutS uint
	var ledFeedback bool
	flag.StringVar(&outPath, "out", defaultFlashPath, "Output flash image path.")
	flag.Int64Var(&flashSize, "size", defaultFlashSize, "Flash image size (bytes).")
	flag.UintVar(&activeFace, "face", 0, "Face index shown at power-on.")
	flag.UintVar(&longPressMs, "longpress", uint(settings.Default().LongPressMs), "Long press threshold (ms).")
	flag.UintVar(&timeoutS, "timeout", uint(settings.Default().TimeoutS), "Inactivity timeout (s, 0 = never).")
	flag.BoolVar(&ledFeedback, "led", true, "Light the LED while a button is held.")
	flag.Parse()

	cfg := settings.Default()
	cfg.ActiveFace = uint8(activeFace)
	cfg.LongPressMs = uint16(longPressMs)
	cfg.TimeoutS = uint16(timeoutS)
	if ledFeedback {
		cfg.Flags |= settings.FlagLEDFeedback
	} else {
		cfg.Flags &^= settings.FlagLEDFeedback
	}

	if err := run(outPath, flashSize, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(outPath string, flashSize int64, cfg settings.Settings) error {
	ff, err := openFlashFile(outPath, flashSize)
	if err != nil {
		return err
	}
	defer ff.Close()

	store, err := settings.Open(ff, true)
	if err != nil {
		return fmt.Errorf("format %q: %w", outPath, err)
	}

	if err := store.Save(cfg); err != nil {
		store.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("unmount %q: %w", outPath, err)
	}

	fmt.Printf("wrote %s (%d bytes): face=%d longpress=%dms timeout=%ds flags=%#x\n",
		outPath, flashSize, cfg.ActiveFace, cfg.LongPressMs, cfg.TimeoutS, cfg.Flags)
	return nil
}
