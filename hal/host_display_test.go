//go:build !tinygo

package hal

import "testing"

func TestHostDisplayWriteString(t *testing.T) {
	d := newHostDisplay()
	if got := d.text(); got != "          " {
		t.Fatalf("fresh display: expected blanks, got %q", got)
	}

	d.WriteString("hello", 4)
	if got := d.text(); got != "    hello " {
		t.Errorf("expected %q, got %q", "    hello ", got)
	}
}

func TestHostDisplayClipping(t *testing.T) {
	d := newHostDisplay()
	d.WriteString("abcd", 8)
	if got := d.text(); got != "        ab" {
		t.Errorf("expected %q, got %q", "        ab", got)
	}

	d.WriteChar('z', -1)
	d.WriteChar('z', DisplayWidth)
	if got := d.text(); got != "        ab" {
		t.Errorf("out-of-range WriteChar changed display: %q", got)
	}

	d.WriteChar('x', 0)
	if got := d.text(); got != "x       ab" {
		t.Errorf("expected %q, got %q", "x       ab", got)
	}
}
