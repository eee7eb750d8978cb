package main

import "github.com/milk9111/runonce/ecs/component"

// Dot is a bouncing square in the demo window.
type Dot struct {
	X  float64
	Y  float64
	VX float64
	VY float64
}

var DotComponent = component.New[*Dot]()
