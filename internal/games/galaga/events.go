package galaga

// SpawnKind identifies what a spawn event creates.
type SpawnKind int

const (
	SpawnPlayerBullet SpawnKind = iota
	SpawnEnemyBullet
)

// SpawnEvent asks the game to create a projectile at a position.
type SpawnEvent struct {
	Kind SpawnKind
	X, Y float64
}

// SpawnQueue collects spawn requests from entities during an update.
// Entities never touch the game's collections directly.
type SpawnQueue struct {
	events []SpawnEvent
}

// Push records a spawn request.
func (q *SpawnQueue) Push(kind SpawnKind, x, y float64) {
	q.events = append(q.events, SpawnEvent{Kind: kind, X: x, Y: y})
}

// Len returns the number of pending events.
func (q *SpawnQueue) Len() int {
	return len(q.events)
}

// Drain calls fn for each pending event in submission order and empties the queue.
func (q *SpawnQueue) Drain(fn func(SpawnEvent)) {
	for _, ev := range q.events {
		fn(ev)
	}
	q.events = q.events[:0]
}

// Reset discards pending events.
func (q *SpawnQueue) Reset() {
	q.events = q.events[:0]
}
