// Package render draws animator segments onto a tcell screen.
//
// The plot is a square world window rasterised onto Braille dots (2x4 per
// cell). Layers are composed in priority order by an Orchestrator: background,
// curve, title, status.
package render
