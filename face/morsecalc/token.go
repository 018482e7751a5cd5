package morsecalc

// tokenCap is the number of characters a token can hold, matching the six
// display positions the token view can show.
const tokenCap = 6

// tokenBuffer is the in-progress operand or command. It is bounded:
// push reports failure instead of truncating.
type tokenBuffer struct {
	buf [tokenCap]byte
	n   int
}

func (t *tokenBuffer) push(c byte) bool {
	if t.n >= tokenCap {
		return false
	}
	t.buf[t.n] = c
	t.n++
	return true
}

func (t *tokenBuffer) popLast() bool {
	if t.n == 0 {
		return false
	}
	t.n--
	return true
}

func (t *tokenBuffer) clear() {
	t.n = 0
}

func (t *tokenBuffer) len() int {
	return t.n
}

func (t *tokenBuffer) String() string {
	return string(t.buf[:t.n])
}
