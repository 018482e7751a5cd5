package settings

import (
	"os"
	"testing"

	"tinygo.org/x/tinyfs"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	blockDev := tinyfs.NewMemoryDevice(256, 4096, 64)
	s, err := Open(blockDev, true)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestMarshalUnmarshal(t *testing.T) {
	original := Settings{
		Version:     CurrentVersion,
		ActiveFace:  1,
		Flags:       FlagLEDFeedback,
		LongPressMs: 750,
		TimeoutS:    120,
	}

	data, err := original.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if len(data) != recordSize {
		t.Errorf("expected %d bytes, got %d", recordSize, len(data))
	}

	var decoded Settings
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if decoded != original {
		t.Errorf("expected %+v, got %+v", original, decoded)
	}
}

func TestUnmarshalShortBuffer(t *testing.T) {
	var s Settings
	if err := s.UnmarshalBinary(make([]byte, recordSize-1)); err != ErrInvalidSize {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	if _, err := s.Load(); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	cfg := Default()
	cfg.ActiveFace = 1
	cfg.LongPressMs = 800

	if err := s.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	first := Default()
	if err := s.Save(first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second := Default()
	second.ActiveFace = 1
	second.TimeoutS = 300
	if err := s.Save(second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != second {
		t.Errorf("expected %+v, got %+v", second, loaded)
	}
}

func TestLoadVersionMismatch(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	cfg := Default()
	if err := s.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Rewrite the record with a bumped version byte.
	old := CurrentVersion
	defer func() { stampVersion(t, s, old) }()
	stampVersion(t, s, old+1)

	if _, err := s.Load(); err != ErrVersionMismatch {
		t.Errorf("expected ErrVersionMismatch, got %v", err)
	}
}

// stampVersion rewrites the stored record with the given version.
func stampVersion(t *testing.T, s *Store, v uint16) {
	t.Helper()
	cfg := Default()
	cfg.Version = v

	data, err := cfg.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	// Save always restamps CurrentVersion, so write the raw record.
	f, err := s.fs.OpenFile(settingsFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	if _, err := f.Write(data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}
