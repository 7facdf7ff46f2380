// Command uisound synthesizes user interface click and notification sounds.
//
// Usage:
//
//	uisound list
//	uisound render click-white -o click.wav
//	uisound render notify-chime --rate 48000 --mp3
//	uisound render-all --dir sounds
//	uisound render-all --recipes my-sounds.yaml --dir sounds
//	uisound play notify-two-chord
//	uisound inspect sounds/click-white.wav
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
