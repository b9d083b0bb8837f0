package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a fighter's body in the collision space.
type ObjectData struct {
	*resolv.Object
}

// StandAt places the body so its bottom-center sits on the given point.
func (o ObjectData) StandAt(p Vector) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space shared by all bodies.
var Space = donburi.NewComponentType[resolv.Space]()
