// Package leveldata parses TMX arena files into world-space geometry.
// It has no engine, ECS or physics dependencies and holds plain data only.
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// Arena holds everything an arena scene needs, in metres. Tiled's x axis
// maps to world X and Tiled's y axis maps to world Z.
type Arena struct {
	Name  string
	Width float64
	Depth float64

	Floors      []Slab
	Walls       []Slab
	Platforms   []Platform
	PlayerSpawn mgl64.Vec3
	Enemies     []EnemySpawn
}

// Slab is a static axis-aligned box.
type Slab struct {
	Min, Max mgl64.Vec3
}

// Platform is a box that shuttles back and forth along Travel.
type Platform struct {
	Slab
	Travel mgl64.Vec3
	Period float64 // seconds for one leg
}

// EnemySpawn places one enemy.
type EnemySpawn struct {
	Position mgl64.Vec3
	Kind     string
}

// Options controls unit conversion and property defaults.
type Options struct {
	PixelsPerMeter float64
	DefaultTravel  float64
	DefaultPeriod  float64
}
