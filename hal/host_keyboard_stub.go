//go:build !tinygo && !cgo

package hal

// poll is a no-op without cgo; headless runs have no key source.
func (b *hostButtons) poll() {}
