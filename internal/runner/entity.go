package runner

// EntityID identifies a spawned entity within one session. IDs come from a
// per-session counter and are only used as collection keys.
type EntityID uint64

// Kind tags a track entity.
type Kind int

const (
	KindObstacle Kind = iota
	KindCoin
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "Obstacle"
	case KindCoin:
		return "Coin"
	default:
		return "Unknown"
	}
}

// Entity is an obstacle or a coin placed on the track.
// Collected is only meaningful for coins.
type Entity struct {
	ID        EntityID
	Kind      Kind
	Z         float64
	Lane      int
	Collected bool
}

// Track holds the active entities of the current run.
type Track struct {
	Obstacles []Entity
	Coins     []Entity
}

func (t *Track) reset() {
	t.Obstacles = t.Obstacles[:0]
	t.Coins = t.Coins[:0]
}

// prune drops every entity further than retention behind playerZ.
// Behind means larger z: the player travels toward negative z.
func prune(list []Entity, playerZ, retention float64) []Entity {
	kept := list[:0]
	for _, e := range list {
		if e.Z-playerZ <= retention {
			kept = append(kept, e)
		}
	}
	return kept
}
