package runner

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/core"
)

func TestEffectBusEmitDrain(t *testing.T) {
	var bus EffectBus

	if bus.Drain() != nil {
		t.Error("empty bus should drain nil")
	}

	a := bus.Emit(core.Vec3{X: 1})
	b := bus.Emit(core.Vec3{X: 2})
	if a.ID == b.ID {
		t.Errorf("effect IDs should be unique, both %d", a.ID)
	}
	if bus.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", bus.Len())
	}

	got := bus.Drain()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Drain() = %+v", got)
	}
	if bus.Len() != 0 {
		t.Error("Drain should empty the bus")
	}

	bus.Emit(core.Vec3{})
	bus.Clear()
	if bus.Drain() != nil {
		t.Error("Clear should drop pending events")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventLanded.String() != "Landed" || StateGameOver.String() != "GameOver" || KindCoin.String() != "Coin" {
		t.Error("unexpected String() output")
	}
}
