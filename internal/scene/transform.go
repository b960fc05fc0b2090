// Package scene provides the display tree the games draw through.
//
// A Container is the backend placement primitive: position, scale,
// rotation, visibility and an ordered child list. A Transform exposes the
// same spatial state as observable values, and a Node ties one transform
// to one container so that assigning an observable moves the container
// immediately. Displays (Label, Sprite, Gauge) are nodes with content;
// Render flattens a container tree into a core.Screen.
package scene

import (
	"github.com/vovakirdan/tui-tycoon/internal/observe"
)

// Vec2 is a 2D vector with float64 components.
type Vec2 struct {
	X, Y float64
}

// Transform holds the spatial state of a node as observable values.
// Position and Scale are vectors, Rotation is radians. Each value can be
// watched independently; assigning any of them notifies its subscribers
// synchronously.
type Transform struct {
	Position *observe.Value[Vec2]
	Scale    *observe.Value[Vec2]
	Rotation *observe.Value[float64]
}

// NewTransform creates a transform at the origin with unit scale and no
// rotation.
func NewTransform() *Transform {
	return &Transform{
		Position: observe.New(Vec2{}),
		Scale:    observe.New(Vec2{X: 1, Y: 1}),
		Rotation: observe.New(0.0),
	}
}

// Destroy drops every subscription on the transform's values.
// The values themselves stay readable afterwards.
func (t *Transform) Destroy() {
	t.Position.Clear()
	t.Scale.Clear()
	t.Rotation.Clear()
}
