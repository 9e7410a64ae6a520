package galaga

import "math"

// Snapshot contains the complete simulation state for determinism checks.
// Floats are stored as their IEEE-754 bits so equal states hash equally.
type Snapshot struct {
	Frame           uint64
	Tick            uint64
	State           string
	Score           int
	HighScore       int
	Lives           int
	PlayerX         uint64
	PlayerY         uint64
	LevelNumber     int
	TransitionTimer int
	PauseDebounce   int

	// Each enemy is 8 values: Kind, X, Y, Health, Active, Cooldown, Phase, Speed
	EnemyCount int
	EnemyData  []uint64

	// Each projectile is 3 values: X, Y, Active
	BulletCount      int
	BulletData       []uint64
	EnemyBulletCount int
	EnemyBulletData  []uint64

	// RNG state when the game uses the built-in generator
	RNGState uint64
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func intBits(v int) uint64 {
	return uint64(v) //#nosec G115 -- hash input only
}

func projectileData(ps []Projectile) []uint64 {
	data := make([]uint64, 0, len(ps)*3)
	for _, p := range ps {
		data = append(data, math.Float64bits(p.X), math.Float64bits(p.Y), boolBits(p.Active))
	}
	return data
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]uint64, 0, len(g.enemies)*8)
	for _, e := range g.enemies {
		enemyData = append(enemyData,
			intBits(int(e.Kind)),
			math.Float64bits(e.X),
			math.Float64bits(e.Y),
			intBits(e.Health),
			boolBits(e.Active),
			intBits(e.Cooldown),
			math.Float64bits(e.Phase),
			math.Float64bits(e.Speed),
		)
	}

	var rngState uint64
	if r, ok := g.rng.(*SimpleRNG); ok {
		rngState = r.State()
	}

	return Snapshot{
		Frame:           uint64(g.frame), //#nosec G115 -- frame count is always positive
		Tick:            uint64(g.tick),  //#nosec G115 -- tick count is always positive
		State:           g.state,
		Score:           g.score,
		HighScore:       g.highScore,
		Lives:           g.player.Lives,
		PlayerX:         math.Float64bits(g.player.X),
		PlayerY:         math.Float64bits(g.player.Y),
		LevelNumber:     g.levelNumber,
		TransitionTimer: g.transitionTimer,
		PauseDebounce:   g.pauseDebounce,

		EnemyCount:       len(g.enemies),
		EnemyData:        enemyData,
		BulletCount:      len(g.bullets),
		BulletData:       projectileData(g.bullets),
		EnemyBulletCount: len(g.enemyBullets),
		EnemyBulletData:  projectileData(g.enemyBullets),

		RNGState: rngState,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + snap.Tick
	for i := 0; i < len(snap.State); i++ {
		h = h*31 + uint64(snap.State[i])
	}
	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerY
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelNumber)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TransitionTimer)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PauseDebounce)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyBulletCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + v
	}
	for _, v := range snap.BulletData {
		h = h*31 + v
	}
	for _, v := range snap.EnemyBulletData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}
