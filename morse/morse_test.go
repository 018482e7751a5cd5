package morse

import "testing"

func key(d *Decoder, seq string) {
	for i := 0; i < len(seq); i++ {
		d.Append(Symbol(seq[i]))
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		seq  string
		want byte
	}{
		{".", 'e'},
		{"-", 't'},
		{"...", 's'},
		{"-..-", 'x'},
		{"-----", '0'},
		{".----", '1'},
		{"..---", '2'},
		{"----.", '9'},
		{".-.-.", '+'},
		{"-....-", '-'},
		{"-..-.", '/'},
		{".-.-.-", '.'},
		{"..--", CharSubmit},
		{"-.--.", CharBackspace},
		{"-.-.-", CharClear},
	}

	for _, c := range cases {
		d := NewDecoder()
		key(d, c.seq)
		if got := d.Decode(); got != c.want {
			t.Errorf("Decode(%q): expected %q, got %q", c.seq, c.want, got)
		}
	}
}

func TestDecodeNoMatch(t *testing.T) {
	d := NewDecoder()
	key(d, "--.--")
	if got := d.Decode(); got != CharNone {
		t.Errorf("expected CharNone for unknown sequence, got %q", got)
	}
}

func TestDecodeEmpty(t *testing.T) {
	d := NewDecoder()
	if got := d.Decode(); got != CharNone {
		t.Errorf("expected CharNone for empty sequence, got %q", got)
	}
}

func TestDecodeIsPureQuery(t *testing.T) {
	d := NewDecoder()
	key(d, "..")
	if got := d.Decode(); got != 'i' {
		t.Fatalf("expected 'i', got %q", got)
	}
	// A second query sees the same state, and the sequence can still grow.
	if got := d.Decode(); got != 'i' {
		t.Errorf("second Decode: expected 'i', got %q", got)
	}
	d.Append(Dot)
	if got := d.Decode(); got != 's' {
		t.Errorf("after third dot: expected 's', got %q", got)
	}
}

func TestReset(t *testing.T) {
	d := NewDecoder()
	key(d, "-.-")
	d.Reset()
	if d.Len() != 0 {
		t.Errorf("expected empty decoder after Reset, got len %d", d.Len())
	}
	if got := d.Decode(); got != CharNone {
		t.Errorf("expected CharNone after Reset, got %q", got)
	}
}

func TestAppendOverflowDropped(t *testing.T) {
	d := NewDecoder()
	for i := 0; i < MaxSymbols+3; i++ {
		d.Append(Dot)
	}
	if d.Len() != MaxSymbols {
		t.Errorf("expected len %d after overflow, got %d", MaxSymbols, d.Len())
	}
}
