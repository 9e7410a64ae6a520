package galaga

import "testing"

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(99)
	b := NewSimpleRNG(99)
	for rep := 0; rep < 100; rep++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed must give the same sequence")
		}
	}
}

func TestSimpleRNGRanges(t *testing.T) {
	r := NewSimpleRNG(0) // zero seed is remapped
	for rep := 0; rep < 10000; rep++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f outside [0, 1)", f)
		}
		if n := r.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("Intn(7) = %d", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}

func TestUniform(t *testing.T) {
	if got := uniform(fixedRandom{n: 3}, 10, 20); got != 13 {
		t.Errorf("uniform = %d, expected 13", got)
	}
	if got := uniform(fixedRandom{n: 3}, 10, 10); got != 10 {
		t.Errorf("degenerate range should return lo, got %d", got)
	}
}

func TestSpawnQueueOrder(t *testing.T) {
	var q SpawnQueue
	q.Push(SpawnEnemyBullet, 0.1, 0.2)
	q.Push(SpawnPlayerBullet, 0.3, 0.4)

	var got []SpawnEvent
	q.Drain(func(ev SpawnEvent) { got = append(got, ev) })

	if len(got) != 2 || got[0].Kind != SpawnEnemyBullet || got[1].X != 0.3 {
		t.Errorf("Drain order = %+v", got)
	}
	if q.Len() != 0 {
		t.Error("queue should be empty after Drain")
	}

	q.Push(SpawnPlayerBullet, 0, 0)
	q.Reset()
	if q.Len() != 0 {
		t.Error("Reset should discard events")
	}
}
