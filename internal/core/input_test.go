package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionLeft, ActionFire)

	if !f.Has(ActionLeft) || !f.Has(ActionFire) {
		t.Error("FrameOf should hold every listed action")
	}
	if f.Has(ActionRight) {
		t.Error("unlisted action should not be held")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should release all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("zero frame should hold nothing")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestFramesFor(t *testing.T) {
	tests := []struct {
		rate, ms, frames int
	}{
		{30, 200, 6},
		{30, 3000, 90},
		{60, 200, 12},
		{0, 200, 6}, // falls back to the default rate
		{30, 0, 0},
		{30, 1, 1},
	}
	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.FramesFor(tc.ms); got != tc.frames {
			t.Errorf("FramesFor(%d) at %d Hz = %d, expected %d", tc.ms, tc.rate, got, tc.frames)
		}
	}
}
