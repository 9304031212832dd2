package game

import (
	"testing"

	"github.com/vovakirdan/space-miner/internal/config"
	"github.com/vovakirdan/space-miner/internal/core"
)

func TestNewAsteroid(t *testing.T) {
	cfg := config.Default().Asteroid
	rng := testRand()

	for size := 1; size <= 3; size++ {
		a := NewAsteroid(rng, core.Vec(100, 100), size, cfg)

		if a.Radius != float64(size)*10 {
			t.Errorf("size %d: Radius = %v, expected %v", size, a.Radius, size*10)
		}

		speed := a.Vel.Length()
		if speed < cfg.MinSpeed-eps || speed > cfg.MaxSpeed+eps {
			t.Errorf("size %d: speed = %v, expected within [%v, %v]", size, speed, cfg.MinSpeed, cfg.MaxSpeed)
		}

		if a.RotationSpeed < -cfg.MaxRotation || a.RotationSpeed > cfg.MaxRotation {
			t.Errorf("size %d: RotationSpeed = %v out of range", size, a.RotationSpeed)
		}

		outline := a.Outline()
		if len(outline) != cfg.Vertices {
			t.Fatalf("size %d: %d vertices, expected %d", size, len(outline), cfg.Vertices)
		}
		for _, p := range outline {
			d := p.DistanceTo(a.Pos)
			if d < a.Radius*cfg.JitterMin-eps || d > a.Radius*cfg.JitterMax+eps {
				t.Errorf("size %d: vertex distance %v outside jitter range", size, d)
			}
		}
	}
}

func TestAsteroidOutlineRotatesWithoutChangingShape(t *testing.T) {
	cfg := config.Default().Asteroid
	a := NewAsteroid(testRand(), core.Vec(200, 200), 3, cfg)
	a.Vel = core.Vector2{}

	before := a.Outline()
	a.RotationSpeed = 90
	a.Update(1, testBounds())
	after := a.Outline()

	if !near(a.Angle, 90) {
		t.Errorf("Angle = %v, expected 90", a.Angle)
	}
	for i := range before {
		db := before[i].DistanceTo(a.Pos)
		da := after[i].DistanceTo(a.Pos)
		if !near(db, da) {
			t.Errorf("vertex %d distance changed from %v to %v", i, db, da)
		}
	}
}

func TestAsteroidSplit(t *testing.T) {
	cfg := config.Default().Asteroid
	rng := testRand()

	small := NewAsteroid(rng, core.Vec(10, 10), 1, cfg)
	if frags := small.Split(rng); len(frags) != 0 {
		t.Errorf("size 1 Split() returned %d fragments, expected 0", len(frags))
	}

	for size := 2; size <= 3; size++ {
		parent := NewAsteroid(rng, core.Vec(300, 400), size, cfg)
		frags := parent.Split(rng)

		if len(frags) != 2 {
			t.Fatalf("size %d Split() returned %d fragments, expected 2", size, len(frags))
		}
		for _, f := range frags {
			if f.Size != size-1 {
				t.Errorf("fragment size = %d, expected %d", f.Size, size-1)
			}
			if f.Pos != parent.Pos {
				t.Errorf("fragment Pos = %v, expected %v", f.Pos, parent.Pos)
			}
			kick := f.Vel.Sub(parent.Vel)
			if kick.X < -cfg.SplitKick || kick.X > cfg.SplitKick || kick.Y < -cfg.SplitKick || kick.Y > cfg.SplitKick {
				t.Errorf("fragment velocity kick %v outside [-%v, %v]", kick, cfg.SplitKick, cfg.SplitKick)
			}
		}
	}
}

func TestAsteroidSplitTerminates(t *testing.T) {
	cfg := config.Default().Asteroid
	rng := testRand()

	queue := []*Asteroid{NewAsteroid(rng, core.Vec(0, 0), 3, cfg)}
	destroyed := 0
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if a.Size < 1 {
			t.Fatalf("got asteroid of size %d", a.Size)
		}
		destroyed++
		queue = append(queue, a.Split(rng)...)
	}

	// 1 + 2 + 4
	if destroyed != 7 {
		t.Errorf("destroyed %d asteroids, expected 7", destroyed)
	}
}

func TestAsteroidCredits(t *testing.T) {
	cfg := config.Default().Asteroid
	tests := []struct {
		size int
		want int
	}{
		{3, 100},
		{2, 200},
		{1, 300},
	}

	for _, tc := range tests {
		a := NewAsteroid(testRand(), core.Vec(0, 0), tc.size, cfg)
		if got := a.Credits(); got != tc.want {
			t.Errorf("size %d Credits() = %d, expected %d", tc.size, got, tc.want)
		}
	}
}
