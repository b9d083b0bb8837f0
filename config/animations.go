package config

import "github.com/automoto/knockout/assets/animations"

// Clip is the frame range of one animation.
type Clip = animations.Range

// CharacterClips maps a character key to the frame ranges of its animation set.
// Ranges index into the character's sprite sheet.
var CharacterClips = map[string]map[StateID]Clip{
	"player": {
		Idle:  {First: 0, Last: 1},
		Punch: {First: 2, Last: 5},
		Hit:   {First: 6, Last: 7},
		Block: {First: 8, Last: 9},
		Dodge: {First: 10, Last: 11},
		Death: {First: 12, Last: 15},
	},
	"enemy": {
		Idle:         {First: 0, Last: 1},
		PunchWarning: {First: 2, Last: 3},
		Punch:        {First: 4, Last: 6},
		Hit:          {First: 7, Last: 8},
		Block:        {First: 9, Last: 10},
	},
}

// RequiredClips lists the clips each role cannot run without.
var RequiredClips = map[string][]StateID{
	"player": {Idle, Punch, Hit, Block, Dodge, Death},
	"enemy":  {Idle, PunchWarning, Punch, Hit, Block},
}

// SheetFrames returns how many frames a character's sprite sheet needs to hold.
func SheetFrames(clips map[StateID]Clip) int {
	n := 0
	for _, c := range clips {
		if c.Last+1 > n {
			n = c.Last + 1
		}
	}
	return n
}
