package animations

import "testing"

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 1)

	// Each frame lasts SpeedInTps+1 ticks.
	var frames []int
	for i := 0; i < 8; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}
	want := []int{0, 1, 1, 2, 2, 0, 0, 1}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
	if !a.Finished() {
		t.Error("expected Finished after wrapping")
	}
}

func TestAnimationFreezeOnComplete(t *testing.T) {
	a := NewAnimation(0, 3, 1, 0)
	a.FreezeOnComplete = true

	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", a.Frame())
	}
	if !a.Finished() {
		t.Error("expected Finished")
	}

	a.Restart()
	if a.Frame() != 0 || a.Finished() {
		t.Errorf("after Restart: frame %d finished %v", a.Frame(), a.Finished())
	}
}

func TestAnimationLengthMatchesFinish(t *testing.T) {
	a := NewAnimation(0, 5, 1, 2)
	a.FreezeOnComplete = true

	ticks := 0
	for !a.Finished() {
		a.Update()
		ticks++
		if ticks > 100 {
			t.Fatal("animation never finished")
		}
	}
	if ticks != a.Length() {
		t.Errorf("finished after %d ticks, Length() = %d", ticks, a.Length())
	}
}

func TestNewAnimationClampsStep(t *testing.T) {
	a := NewAnimation(0, 4, 0, 0)
	a.Update()
	if a.Frame() != 1 {
		t.Errorf("Frame = %d, want 1", a.Frame())
	}
}
