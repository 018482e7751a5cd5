// Package calc implements the watch's RPN calculator engine.
//
// The engine owns a bounded value stack and evaluates one token per
// submission: a number is pushed, an operator pops its operands and pushes
// the result. Outcomes cross the package boundary as plain status codes so
// the caller can surface them on the display unchanged.
package calc

import "strconv"

// Status codes returned by Submit.
const (
	StatusOK           = 0
	StatusUnknownToken = -1
	StatusBadStackSize = -2
)

// StackCap is the maximum stack depth. Nine keeps both the depth and any
// slot index renderable as a single display digit.
const StackCap = 9

// Engine is the calculator state. The zero value is an empty stack.
type Engine struct {
	stack [StackCap]float64
	depth int
}

// New returns an engine with an empty stack.
func New() *Engine {
	return &Engine{}
}

// Reset empties the stack.
func (e *Engine) Reset() {
	e.depth = 0
}

// Depth reports the number of values on the stack.
func (e *Engine) Depth() int {
	return e.depth
}

// Pick returns the value i positions below the top of the stack
// (0 = most recently pushed). It reports false when i is out of range.
func (e *Engine) Pick(i int) (float64, bool) {
	if i < 0 || i >= e.depth {
		return 0, false
	}
	return e.stack[e.depth-1-i], true
}

// Submit evaluates one token and returns a status code. An empty token is
// a successful no-op, so submitting before any input is harmless.
func (e *Engine) Submit(token string) int {
	if token == "" {
		return StatusOK
	}

	if v, err := strconv.ParseFloat(token, 64); err == nil {
		return e.push(v)
	}

	switch token {
	case "+":
		return e.binary(func(a, b float64) float64 { return a + b })
	case "-":
		return e.binary(func(a, b float64) float64 { return a - b })
	case "x":
		return e.binary(func(a, b float64) float64 { return a * b })
	case "/":
		return e.binary(func(a, b float64) float64 { return a / b })
	case "n": // negate top of stack
		if e.depth < 1 {
			return StatusBadStackSize
		}
		e.stack[e.depth-1] = -e.stack[e.depth-1]
		return StatusOK
	case "d": // drop top of stack
		if e.depth < 1 {
			return StatusBadStackSize
		}
		e.depth--
		return StatusOK
	case "s": // swap top two
		if e.depth < 2 {
			return StatusBadStackSize
		}
		e.stack[e.depth-1], e.stack[e.depth-2] = e.stack[e.depth-2], e.stack[e.depth-1]
		return StatusOK
	case "c": // clear stack
		e.depth = 0
		return StatusOK
	}

	return StatusUnknownToken
}

func (e *Engine) push(v float64) int {
	if e.depth >= StackCap {
		return StatusBadStackSize
	}
	e.stack[e.depth] = v
	e.depth++
	return StatusOK
}

// binary pops b then a and pushes op(a, b).
func (e *Engine) binary(op func(a, b float64) float64) int {
	if e.depth < 2 {
		return StatusBadStackSize
	}
	b := e.stack[e.depth-1]
	a := e.stack[e.depth-2]
	e.depth -= 2
	e.stack[e.depth] = op(a, b)
	e.depth++
	return StatusOK
}
