//go:build tinygo

package main

import (
	"tickface/app"
	"tickface/hal"
)

func main() {
	app.Run(hal.New())
}
