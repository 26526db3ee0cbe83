// Package tui holds terminal presentation helpers for the CLI.
package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner shown when a session starts
// on an interactive terminal.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Olive-to-rust gradient
	s1 := termenv.String(` __      ____ _ _ __ __ _  __ _ _ __ ___   ___ `).Foreground(p.Color("#a3b763"))
	s2 := termenv.String(` \ \ /\ / / _' | '__/ _' |/ _' | '_ ' _ \ / _ \`).Foreground(p.Color("#b7a05c"))
	s3 := termenv.String(`  \ V  V / (_| | | | (_| | (_| | | | | | |  __/`).Foreground(p.Color("#c98a55"))
	s4 := termenv.String(`   \_/\_/ \__,_|_|  \__, |\__,_|_| |_| |_|\___|`).Foreground(p.Color("#d97650"))
	s5 := termenv.String(`                     __/ |`).Foreground(p.Color("#e4604b"))
	s6 := termenv.String(`                    |___/   ` + version).Foreground(p.Color("#ef4444"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
