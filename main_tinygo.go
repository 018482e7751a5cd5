//go:build tinygo

package main

import (
	"morsewatch/app"
	"morsewatch/hal"
)

func main() {
	app.Run(hal.New())
}
