package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// SpriteData is what the renderer reads each frame: where the fighter stands,
// which sheet frame to show and whether the frame is mirrored.
type SpriteData struct {
	Key      string // sprite sheet key
	Position Vector
	Frame    int
	FlipX    bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
