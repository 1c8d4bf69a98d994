// Package animations keeps frame bookkeeping for strip animations.
package animations

type Animation struct {
	First      int
	Last       int
	Step       int     // how many indices to advance per frame
	SpeedInTps float32 // ticks spent on each frame
	// FreezeOnComplete holds the last frame instead of looping.
	FreezeOnComplete bool

	frameCounter float32
	frame        int
	looped       bool
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	if a.FreezeOnComplete && a.looped {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.looped = true
		if a.FreezeOnComplete {
			a.frame = a.Last
		} else {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Finished reports whether the animation has run past its last frame at
// least once since the last Restart.
func (a *Animation) Finished() bool {
	return a.looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.looped = false
}

// Length returns the number of ticks one pass takes.
func (a *Animation) Length() int {
	frames := (a.Last-a.First)/a.Step + 1
	return frames * (int(a.SpeedInTps) + 1)
}
