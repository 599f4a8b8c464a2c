package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

func TestBurstLifetime(t *testing.T) {
	var s burstSet
	s.add([]runner.EffectEvent{{ID: 1, Position: core.Vec3{Z: -10}}})

	step := time.Second / 60
	frames := 0
	for len(s.list()) > 0 {
		s.advance(step)
		frames++
		if frames > 1000 {
			t.Fatal("burst never expired")
		}
	}

	// 0.55s at 60 fps is 33 frames
	if frames != 34 && frames != 33 {
		t.Errorf("burst lived %d frames, expected about 33", frames)
	}
}

func TestBurstsExpireIndependently(t *testing.T) {
	var s burstSet
	s.add([]runner.EffectEvent{{ID: 1}})
	s.advance(400 * time.Millisecond)
	s.add([]runner.EffectEvent{{ID: 2}})
	s.advance(200 * time.Millisecond)

	live := s.list()
	if len(live) != 1 || live[0].ID != 2 {
		t.Errorf("live bursts = %+v, expected only ID 2", live)
	}
}

func TestBurstProgress(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want float64
	}{
		{0, 0},
		{BurstLifetime / 2, 0.5},
		{BurstLifetime, 1},
		{2 * BurstLifetime, 1},
	}
	for _, tc := range tests {
		if got := (Burst{Age: tc.age}).Progress(); got != tc.want {
			t.Errorf("Progress(%v) = %v, expected %v", tc.age, got, tc.want)
		}
	}
}

func TestBurstClear(t *testing.T) {
	var s burstSet
	s.add([]runner.EffectEvent{{ID: 1}, {ID: 2}})
	s.clear()
	if len(s.list()) != 0 {
		t.Error("clear should drop all bursts")
	}
}
