package assets

import (
	"image"
	"image/color"

	"github.com/automoto/knockout/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sheet is a horizontal strip of equally sized frames.
type Sheet struct {
	Image       *ebiten.Image
	FrameWidth  int
	FrameHeight int
	frames      map[int]*ebiten.Image
}

// Frame returns a cached sub-image for frame i. Out of range indices clamp
// to the nearest frame.
func (s *Sheet) Frame(i int) *ebiten.Image {
	n := s.Image.Bounds().Dx() / s.FrameWidth
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	if img, ok := s.frames[i]; ok {
		return img
	}
	x := i * s.FrameWidth
	img := s.Image.SubImage(image.Rect(x, 0, x+s.FrameWidth, s.FrameHeight)).(*ebiten.Image)
	s.frames[i] = img
	return img
}

// SheetLoader draws character sheets on first use and keeps them.
type SheetLoader struct {
	cache map[string]*Sheet
}

func NewSheetLoader() *SheetLoader {
	return &SheetLoader{cache: make(map[string]*Sheet)}
}

// Sheet returns the sheet for key, drawing one frame per clip frame.
func (l *SheetLoader) Sheet(key string, clips map[config.StateID]config.Clip, frameW, frameH int) *Sheet {
	if s, ok := l.cache[key]; ok {
		return s
	}
	s := drawSheet(clips, frameW, frameH)
	l.cache[key] = s
	return s
}

// Reset drops every cached sheet, for when clip ranges change.
func (l *SheetLoader) Reset() {
	for k, s := range l.cache {
		s.Image.Deallocate()
		delete(l.cache, k)
	}
}

var sheetLoader = NewSheetLoader()

func GetSheet(key string, clips map[config.StateID]config.Clip, frameW, frameH int) *Sheet {
	return sheetLoader.Sheet(key, clips, frameW, frameH)
}

func ResetSheets() {
	sheetLoader.Reset()
}

// pose describes one silhouette. Offsets are in frame pixels.
type pose struct {
	lean   float32 // torso shift along x
	crouch float32 // torso drop
	leftY  float32 // glove heights above the shoulders
	rightY float32
	leftX  float32 // glove spread from the torso center
	rightX float32
	down   float32 // 0 standing, 1 flat on the canvas
}

func drawSheet(clips map[config.StateID]config.Clip, frameW, frameH int) *Sheet {
	n := config.SheetFrames(clips)
	if n == 0 {
		n = 1
	}
	img := ebiten.NewImage(n*frameW, frameH)
	for i := 0; i < n; i++ {
		state, phase := frameState(clips, i)
		drawPose(img, float32(i*frameW), float32(frameW), float32(frameH), poseFor(state, phase))
	}
	return &Sheet{Image: img, FrameWidth: frameW, FrameHeight: frameH, frames: make(map[int]*ebiten.Image)}
}

// frameState finds the clip a sheet frame belongs to and how far into the
// clip it is, from 0 to 1.
func frameState(clips map[config.StateID]config.Clip, frame int) (config.StateID, float32) {
	for state, c := range clips {
		if frame < c.First || frame > c.Last {
			continue
		}
		if c.Len() == 1 {
			return state, 0
		}
		return state, float32(frame-c.First) / float32(c.Len()-1)
	}
	return config.Idle, 0
}

func poseFor(state config.StateID, phase float32) pose {
	guard := pose{leftY: 10, rightY: 10, leftX: 6, rightX: 6}
	switch state {
	case config.Idle:
		guard.crouch = phase
		return guard
	case config.Block:
		guard.leftY, guard.rightY = 16, 16
		guard.leftX, guard.rightX = 2, 2
		guard.crouch = 2 * phase
		return guard
	case config.Dodge:
		guard.lean = -5 + 10*phase
		guard.crouch = 4
		return guard
	case config.PunchWarning:
		guard.lean = 2 * phase
		guard.rightY = 18
		guard.rightX = 10
		return guard
	case config.Punch:
		guard.lean = -2 * phase
		guard.leftY = 10 + 14*phase
		guard.leftX = 6 - 4*phase
		return guard
	case config.Hit:
		guard.lean = 3 + phase
		guard.leftY, guard.rightY = 4, 4
		guard.leftX, guard.rightX = 9, 9
		return guard
	case config.Death:
		return pose{down: phase}
	}
	return guard
}

func drawPose(dst *ebiten.Image, ox, w, h float32, p pose) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cx := ox + w/2 + p.lean

	if p.down > 0 {
		// Collapse toward a body lying across the bottom of the frame.
		bodyH := h * (1 - 0.8*p.down) * 0.6
		vector.FillRect(dst, ox+2, h-bodyH, w-4, bodyH, white, false)
		vector.FillCircle(dst, ox+w-6, h-bodyH-2, 4, white, false)
		return
	}

	shoulderY := h*0.35 + p.crouch
	hipY := shoulderY + h*0.4
	vector.FillRect(dst, cx-w*0.2, shoulderY, w*0.4, h*0.4, white, false)
	vector.FillRect(dst, cx-w*0.2, hipY, w*0.12, h-hipY, white, false)
	vector.FillRect(dst, cx+w*0.08, hipY, w*0.12, h-hipY, white, false)
	vector.FillCircle(dst, cx, shoulderY-5, 5, white, false)

	// gloves

	vector.FillCircle(dst, cx-p.leftX, shoulderY+6-p.leftY, 3.5, white, false)
	vector.FillCircle(dst, cx+p.rightX, shoulderY+6-p.rightY, 3.5, white, false)
}
