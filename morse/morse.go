// Package morse turns dot/dash key sequences into characters.
//
// A Decoder accumulates the symbols of the character currently being keyed.
// Decoding is a pure query against the accumulated sequence; the caller
// decides when a character is finished and resets the accumulator.
package morse

// Symbol is a single dot or dash input.
type Symbol byte

const (
	Dot  Symbol = '.'
	Dash Symbol = '-'
)

// Characters produced for sequences that carry meaning beyond plain text.
// The prosign assignments follow amateur-radio convention: KN ("go ahead,
// named station only") erases, KA (starting signal) clears.
const (
	// CharNone is returned when the accumulated sequence matches nothing.
	CharNone byte = 0
	// CharSubmit ("..--") ends the current word.
	CharSubmit byte = ' '
	// CharBackspace ("-.--.", prosign KN) erases the previous character.
	CharBackspace byte = 0x08
	// CharClear ("-.-.-", prosign KA) discards the whole line.
	CharClear byte = 0x18
)

// MaxSymbols is the longest sequence the decoder accepts. The standard
// character set needs at most six symbols; further input is dropped.
const MaxSymbols = 8

var table = map[string]byte{
	".-":    'a',
	"-...":  'b',
	"-.-.":  'c',
	"-..":   'd',
	".":     'e',
	"..-.":  'f',
	"--.":   'g',
	"....":  'h',
	"..":    'i',
	".---":  'j',
	"-.-":   'k',
	".-..":  'l',
	"--":    'm',
	"-.":    'n',
	"---":   'o',
	".--.":  'p',
	"--.-":  'q',
	".-.":   'r',
	"...":   's',
	"-":     't',
	"..-":   'u',
	"...-":  'v',
	".--":   'w',
	"-..-":  'x',
	"-.--":  'y',
	"--..":  'z',
	"-----": '0',
	".----": '1',
	"..---": '2',
	"...--": '3',
	"....-": '4',
	".....": '5',
	"-....": '6',
	"--...": '7',
	"---..": '8',
	"----.": '9',

	".-.-.-": '.',
	".-.-.":  '+',
	"-....-": '-',
	"-..-.":  '/',

	"..--":  CharSubmit,
	"-.--.": CharBackspace,
	"-.-.-": CharClear,
}

// Decoder accumulates the symbols of one in-progress character.
// The zero value is ready to use.
type Decoder struct {
	buf [MaxSymbols]byte
	n   int
}

// NewDecoder returns an empty decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset clears the accumulated sequence.
func (d *Decoder) Reset() {
	d.n = 0
}

// Append adds one symbol to the current sequence. Symbols beyond
// MaxSymbols are dropped; the sequence is already undecodable by then.
func (d *Decoder) Append(s Symbol) {
	if d.n >= MaxSymbols {
		return
	}
	d.buf[d.n] = byte(s)
	d.n++
}

// Len reports how many symbols have been keyed for the current character.
func (d *Decoder) Len() int {
	return d.n
}

// Decode returns the character for the accumulated sequence, or CharNone
// if the sequence matches nothing. It does not consume the sequence.
func (d *Decoder) Decode() byte {
	if d.n == 0 {
		return CharNone
	}
	return table[string(d.buf[:d.n])]
}
