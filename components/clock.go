package components

import "github.com/yohamta/donburi"

// ClockData is the frame time source. Delta is the time in seconds since the
// previous update.
type ClockData struct {
	Delta   float64
	Elapsed float64
	Frame   int
}

var Clock = donburi.NewComponentType[ClockData]()
