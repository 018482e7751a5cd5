package settings

import (
	"errors"
	"os"
	"strings"

	"tinygo.org/x/tinyfs"
	"tinygo.org/x/tinyfs/littlefs"
)

const (
	settingsFile = "/settings.bin"
	tempSuffix   = ".tmp"
)

var (
	ErrNotFound        = errors.New("settings not found")
	ErrVersionMismatch = errors.New("settings version mismatch")
)

// Store handles settings persistence using littlefs.
type Store struct {
	fs      *littlefs.LFS
	mounted bool
}

// Open mounts the filesystem on the given block device. If format is true
// and mounting fails, the device is formatted and mounted fresh.
func Open(dev tinyfs.BlockDevice, format bool) (*Store, error) {
	lfs := littlefs.New(dev)
	lfs.Configure(&littlefs.Config{
		CacheSize:     512,
		LookaheadSize: 128,
	})

	if err := lfs.Mount(); err != nil {
		if !format {
			return nil, err
		}
		if err := lfs.Format(); err != nil {
			return nil, err
		}
		if err := lfs.Mount(); err != nil {
			return nil, err
		}
	}

	s := &Store{fs: lfs, mounted: true}

	// Remove a temp file left over from an interrupted write.
	s.fs.Remove(settingsFile + tempSuffix)

	return s, nil
}

// Close unmounts the filesystem.
func (s *Store) Close() error {
	if s.mounted {
		s.mounted = false
		return s.fs.Unmount()
	}
	return nil
}

// Load reads the stored settings. It returns ErrNotFound when nothing has
// been saved yet and ErrVersionMismatch when the record predates the
// current format.
func (s *Store) Load() (Settings, error) {
	var cfg Settings

	f, err := s.fs.Open(settingsFile)
	if err != nil {
		if isNotExist(err) {
			return cfg, ErrNotFound
		}
		return cfg, err
	}
	defer f.Close()

	buf := make([]byte, recordSize)
	n, err := f.Read(buf)
	if err != nil {
		return cfg, err
	}
	if n != recordSize {
		return cfg, ErrInvalidSize
	}

	if err := cfg.UnmarshalBinary(buf); err != nil {
		return cfg, err
	}
	if cfg.Version != CurrentVersion {
		return cfg, ErrVersionMismatch
	}
	return cfg, nil
}

// Save writes the settings atomically: temp file first, then rename.
func (s *Store) Save(cfg Settings) error {
	cfg.Version = CurrentVersion

	data, err := cfg.MarshalBinary()
	if err != nil {
		return err
	}

	tempPath := settingsFile + tempSuffix
	s.fs.Remove(tempPath)

	f, err := s.fs.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		s.fs.Remove(tempPath)
		return err
	}

	// Sync ensures data hits flash before the rename makes it visible.
	if syncer, ok := f.(interface{ Sync() error }); ok {
		if err := syncer.Sync(); err != nil {
			f.Close()
			s.fs.Remove(tempPath)
			return err
		}
	}

	if err := f.Close(); err != nil {
		s.fs.Remove(tempPath)
		return err
	}

	// Remove the old record first; littlefs rename does not replace.
	s.fs.Remove(settingsFile)

	if err := s.fs.Rename(tempPath, settingsFile); err != nil {
		s.fs.Remove(tempPath)
		return err
	}
	return nil
}

// isNotExist matches both os-style errors and littlefs error strings.
func isNotExist(err error) bool {
	if err == nil {
		return false
	}
	if os.IsNotExist(err) {
		return true
	}
	return strings.Contains(err.Error(), "No directory entry")
}
