// Chromabeat - A music-reactive colour harmonization engine
//
// Chromabeat harmonizes colours extracted from album artwork against a
// curated palette in OKLab space, driven by real-time music analysis.
//
// Copyright (c) 2025 Jess Lowell
// Licensed under the MIT License
package main

import (
	"github.com/jlowell/chromabeat/internal/cli"
)

func main() {
	cli.Execute()
}
