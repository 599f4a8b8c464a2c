package runner

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Cursor is the scroll position behind which the next entity of one kind
// is due. It only moves toward negative z.
type Cursor struct {
	NextSpawnZ float64
}

// Spawner places obstacles and coins ahead of the player.
type Spawner struct {
	rng       *rand.Rand
	nextID    EntityID
	Obstacles Cursor
	Coins     Cursor
}

func newSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// reset re-seeds the RNG and puts both cursors back at their initial offsets.
// Entity IDs keep counting so they stay unique for the whole session.
func (sp *Spawner) reset(cfg config.SpawnConfig, seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
	sp.Obstacles = Cursor{NextSpawnZ: cfg.Obstacles.InitialCursor}
	sp.Coins = Cursor{NextSpawnZ: cfg.Coins.InitialCursor}
}

// update runs one spawn check for both kinds, then prunes entities that
// fell behind the retention distance.
func (sp *Spawner) update(playerZ float64, track *Track, cfg config.RunnerConfig) {
	if e, ok := sp.check(&sp.Obstacles, KindObstacle, playerZ, cfg.Spawn.Obstacles, cfg.Track.Lanes); ok {
		track.Obstacles = append(track.Obstacles, e)
	}
	if e, ok := sp.check(&sp.Coins, KindCoin, playerZ, cfg.Spawn.Coins, cfg.Track.Lanes); ok {
		track.Coins = append(track.Coins, e)
	}

	retention := cfg.Spawn.RetentionDistance
	track.Obstacles = prune(track.Obstacles, playerZ, retention)
	track.Coins = prune(track.Coins, playerZ, retention)
}

func (sp *Spawner) check(cur *Cursor, kind Kind, playerZ float64, st config.SpawnTrack, lanes int) (Entity, bool) {
	if playerZ >= cur.NextSpawnZ-st.TriggerDistance {
		return Entity{}, false
	}

	sp.nextID++
	e := Entity{
		ID:   sp.nextID,
		Kind: kind,
		Z:    playerZ - st.AheadOffset,
		Lane: sp.rng.Intn(lanes),
	}
	cur.NextSpawnZ = playerZ - sp.randomInRange(st.MinGap, st.MaxGap)
	return e, true
}

// randomInRange returns a uniform value in [lo, hi).
func (sp *Spawner) randomInRange(lo, hi float64) float64 {
	return lo + sp.rng.Float64()*(hi-lo)
}
