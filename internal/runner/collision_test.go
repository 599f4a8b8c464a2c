package runner

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/core"
)

func TestCheckCollisionsObstacle(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		name string
		p    Player
		o    Entity
		hit  bool
	}{
		{"same lane close", Player{Lane: 1, Z: -100}, Entity{Z: -100.5, Lane: 1}, true},
		{"same lane too far ahead", Player{Lane: 1, Z: -100}, Entity{Z: -101.5, Lane: 1}, false},
		{"adjacent lane", Player{Lane: 0, Z: -100}, Entity{Z: -100, Lane: 1}, false},
		{"jumping over", Player{Lane: 1, Z: -100, Y: 3.0}, Entity{Z: -100.5, Lane: 1}, false},
		{"low jump still hits", Player{Lane: 1, Z: -100, Y: 2.4}, Entity{Z: -100.5, Lane: 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.o.Kind = KindObstacle
			track := Track{Obstacles: []Entity{tc.o}}
			if got := checkCollisions(tc.p, &track, cfg).Hit; got != tc.hit {
				t.Errorf("Hit = %v, expected %v", got, tc.hit)
			}
		})
	}
}

func TestCheckCollisionsCoinTolerancesAreLooser(t *testing.T) {
	cfg := testConfig()
	p := Player{Lane: 1, Z: -10}

	// 2.0 away: outside the obstacle box but inside the coin box
	track := Track{
		Obstacles: []Entity{{ID: 1, Kind: KindObstacle, Z: -12, Lane: 1}},
		Coins:     []Entity{{ID: 2, Kind: KindCoin, Z: -12, Lane: 1}},
	}
	res := checkCollisions(p, &track, cfg)
	if res.Hit {
		t.Error("obstacle 2 units away should not hit")
	}
	if len(res.Pickups) != 1 {
		t.Fatalf("pickups = %d, expected 1", len(res.Pickups))
	}
	want := core.Vec3{X: 0, Y: cfg.Collision.EffectHeight, Z: -12}
	if res.Pickups[0].Position != want {
		t.Errorf("pickup position = %+v, expected %+v", res.Pickups[0].Position, want)
	}
}

func TestCheckCollisionsCoinIdempotent(t *testing.T) {
	cfg := testConfig()
	p := Player{Lane: 0, Z: -50.2}
	track := Track{Coins: []Entity{{ID: 7, Kind: KindCoin, Z: -50, Lane: 0}}}

	first := checkCollisions(p, &track, cfg)
	second := checkCollisions(p, &track, cfg)

	if len(first.Pickups) != 1 || len(second.Pickups) != 0 {
		t.Errorf("pickups = %d then %d, expected 1 then 0", len(first.Pickups), len(second.Pickups))
	}
	if !track.Coins[0].Collected {
		t.Error("coin should be flagged collected in place")
	}
}

func TestCheckCollisionsCoinsIgnoreHeight(t *testing.T) {
	cfg := testConfig()
	p := Player{Lane: 2, Z: -30, Y: 4}
	track := Track{Coins: []Entity{{ID: 3, Kind: KindCoin, Z: -31, Lane: 2}}}

	if n := len(checkCollisions(p, &track, cfg).Pickups); n != 1 {
		t.Errorf("pickups while airborne = %d, expected 1", n)
	}
}
