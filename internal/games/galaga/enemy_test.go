package galaga

import (
	"math"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		ok   bool
	}{
		{"bee", KindBee, true},
		{"BEE", KindBee, true},
		{"Butterfly", KindButterfly, true},
		{"moth", KindMoth, true},
		{"wasp", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		kind, ok := ParseKind(tc.in)
		if ok != tc.ok || (ok && kind != tc.kind) {
			t.Errorf("ParseKind(%q) = %v, %v; expected %v, %v", tc.in, kind, ok, tc.kind, tc.ok)
		}
	}
}

func TestEnemyKinematics(t *testing.T) {
	const speed = 0.01
	tests := []struct {
		kind   Kind
		phase  float64
		x      float64
		dy     float64
		sprite string
	}{
		{KindBee, speed * 2, 0.4 + math.Sin(speed*2)*0.05, speed / 4, "bee.spr"},
		{KindButterfly, speed * 1.5, 0.4 + math.Cos(speed*1.5)*0.08, speed / 3, "butterfly.spr"},
		{KindMoth, speed, 0.4 + math.Sin(speed*0.8)*0.1, speed / 6, "catcher.spr"},
	}

	r := DefaultRules()
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			e := NewEnemy(tc.kind, 0.4, 0.8, 0.05, 10, speed, &r, neverFire)
			var q SpawnQueue
			e.Update(&r, r.FireChance, neverFire, &q)

			if math.Abs(e.Phase-tc.phase) > 1e-12 {
				t.Errorf("phase = %f, expected %f", e.Phase, tc.phase)
			}
			if math.Abs(e.X-tc.x) > 1e-12 {
				t.Errorf("x = %f, expected %f", e.X, tc.x)
			}
			if math.Abs((0.8-e.Y)-tc.dy) > 1e-12 {
				t.Errorf("descent = %f, expected %f", 0.8-e.Y, tc.dy)
			}
			if tc.kind.SpriteFile() != tc.sprite {
				t.Errorf("SpriteFile() = %q, expected %q", tc.kind.SpriteFile(), tc.sprite)
			}
		})
	}
}

func TestEnemyInitialCooldownRange(t *testing.T) {
	r := DefaultRules()
	rng := NewSimpleRNG(7)
	for rep := 0; rep < 1000; rep++ {
		e := NewEnemy(KindBee, 0.5, 0.5, 0.05, 10, 0.005, &r, rng)
		if e.Cooldown < 100 || e.Cooldown >= 300 {
			t.Fatalf("initial cooldown %d outside [100, 300)", e.Cooldown)
		}
		if e.Health != 1 || !e.Active {
			t.Fatalf("new enemy should be active with 1 health, got %+v", e)
		}
	}
}

func TestEnemyTryShoot(t *testing.T) {
	r := DefaultRules()
	e := NewEnemy(KindBee, 0.3, 0.7, 0.06, 10, 0.005, &r, neverFire)
	e.Cooldown = 2

	var q SpawnQueue
	always := fixedRandom{f: 0.0, n: 5}

	// Still reloading: no roll, no shot.
	if e.TryShoot(&r, r.FireChance, always, &q) {
		t.Fatal("enemy should not fire while cooling down")
	}

	// Cooldown expired but the roll fails: stays expired.
	if e.TryShoot(&r, r.FireChance, neverFire, &q) {
		t.Fatal("failed roll should not fire")
	}
	if e.Cooldown != 0 {
		t.Errorf("failed roll must not reset the cooldown, got %d", e.Cooldown)
	}

	muzzleY := e.Y - e.Length/2
	if !e.TryShoot(&r, r.FireChance, always, &q) {
		t.Fatal("expired cooldown with a winning roll should fire")
	}
	if e.Cooldown != 155 {
		t.Errorf("cooldown after firing = %d, expected 150 + 5", e.Cooldown)
	}

	if q.Len() != 1 {
		t.Fatalf("expected one spawn event, got %d", q.Len())
	}
	q.Drain(func(ev SpawnEvent) {
		if ev.Kind != SpawnEnemyBullet || ev.X != 0.3 || ev.Y != muzzleY {
			t.Errorf("spawn = %+v, expected enemy bullet at (0.3, %f)", ev, muzzleY)
		}
	})
}

func TestEnemyLeavesThroughBottom(t *testing.T) {
	r := DefaultRules()
	e := NewEnemy(KindMoth, 0.5, -0.09, 0.05, 10, 0.6, &r, neverFire)

	var q SpawnQueue
	e.Update(&r, r.FireChance, neverFire, &q)
	if e.Active {
		t.Fatalf("enemy at y=%f should be gone", e.Y)
	}

	y := e.Y
	e.Update(&r, r.FireChance, neverFire, &q)
	if e.Y != y {
		t.Error("inactive enemies must not move")
	}
}

func TestEnemyTakeDamage(t *testing.T) {
	r := DefaultRules()
	r.EnemyHealth = 2
	e := NewEnemy(KindButterfly, 0.5, 0.5, 0.05, 80, 0.005, &r, neverFire)

	if e.TakeDamage(1) {
		t.Error("first hit should not kill a 2-health enemy")
	}
	if !e.Active {
		t.Error("enemy should survive the first hit")
	}
	if !e.TakeDamage(1) {
		t.Error("second hit should kill")
	}
	if e.TakeDamage(1) {
		t.Error("hitting a dead enemy should not report another kill")
	}
}

func TestEnemyCollidesWith(t *testing.T) {
	r := DefaultRules()
	e := NewEnemy(KindBee, 0.5, 0.5, 0.5, 10, 0, &r, neverFire)

	tests := []struct {
		name   string
		px, py float64
		hit    bool
	}{
		{"center", 0.5, 0.5, true},
		{"inside", 0.7, 0.5, true},
		{"on the radius", 0.75, 0.5, false},
		{"outside", 0.5, 0.9, false},
	}
	for _, tc := range tests {
		if got := e.CollidesWith(tc.px, tc.py); got != tc.hit {
			t.Errorf("%s: CollidesWith(%f, %f) = %v, expected %v", tc.name, tc.px, tc.py, got, tc.hit)
		}
	}
}
