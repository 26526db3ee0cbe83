// Package main is the entry point for the wargame CLI.
package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Best effort: WARGAME_* variables may be set directly instead.
	_ = godotenv.Load()

	Execute()
}
