package game

import (
	"testing"

	"github.com/vovakirdan/space-miner/internal/core"
)

func TestBodyMoveWraps(t *testing.T) {
	bounds := core.Size{W: 100, H: 50}

	tests := []struct {
		name  string
		pos   core.Vector2
		vel   core.Vector2
		wantX float64
		wantY float64
	}{
		{"inside", core.Vec(10, 10), core.Vec(5, 5), 15, 15},
		{"past right edge", core.Vec(99, 10), core.Vec(5, 0), 0, 10},
		{"exactly at width", core.Vec(95, 10), core.Vec(5, 0), 0, 10},
		{"past left edge", core.Vec(1, 10), core.Vec(-5, 0), 100, 10},
		{"past bottom edge", core.Vec(10, 48), core.Vec(0, 5), 10, 0},
		{"past top edge", core.Vec(10, 2), core.Vec(0, -5), 10, 50},
		{"both axes", core.Vec(-1, 60), core.Vec(0, 0), 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{Pos: tc.pos, Vel: tc.vel}
			b.Move(1, bounds)

			if !near(b.Pos.X, tc.wantX) || !near(b.Pos.Y, tc.wantY) {
				t.Errorf("Pos = %v, expected (%v, %v)", b.Pos, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestBodyCollidesWith(t *testing.T) {
	a := Body{Pos: core.Vec(0, 0), Radius: 10}

	tests := []struct {
		name  string
		other Body
		want  bool
	}{
		{"same position", Body{Pos: core.Vec(0, 0), Radius: 1}, true},
		{"overlapping", Body{Pos: core.Vec(14, 0), Radius: 5}, true},
		{"touching", Body{Pos: core.Vec(15, 0), Radius: 5}, false},
		{"apart", Body{Pos: core.Vec(30, 40), Radius: 5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.CollidesWith(tc.other); got != tc.want {
				t.Errorf("CollidesWith() = %v, expected %v", got, tc.want)
			}
			if got := tc.other.CollidesWith(a); got != tc.want {
				t.Errorf("collision is not symmetric")
			}
		})
	}
}

func TestBulletDiesOffScreen(t *testing.T) {
	bounds := core.Size{W: 100, H: 50}

	tests := []struct {
		name      string
		pos       core.Vector2
		vel       core.Vector2
		wantAlive bool
	}{
		{"inside", core.Vec(50, 25), core.Vec(10, 0), true},
		{"on right edge", core.Vec(90, 25), core.Vec(10, 0), true},
		{"past right edge", core.Vec(95, 25), core.Vec(10, 0), false},
		{"past left edge", core.Vec(5, 25), core.Vec(-10, 0), false},
		{"past top edge", core.Vec(50, 5), core.Vec(0, -10), false},
		{"past bottom edge", core.Vec(50, 45), core.Vec(0, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBullet(tc.pos, tc.vel, 2)
			b.Update(1, bounds)

			if b.Alive != tc.wantAlive {
				t.Errorf("Alive = %v, expected %v", b.Alive, tc.wantAlive)
			}
			// Bullets never wrap
			if !tc.wantAlive && b.Pos.X >= 0 && b.Pos.X <= bounds.W && b.Pos.Y >= 0 && b.Pos.Y <= bounds.H {
				t.Errorf("dead bullet was wrapped back to %v", b.Pos)
			}
		})
	}
}
