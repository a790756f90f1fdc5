package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

func TestCheckCollision(t *testing.T) {
	bounds := components.Bounds{W: 1000, H: 1000}
	tests := []struct {
		name   string
		ax, ay float64
		ar     float64
		bx, by float64
		br     float64
		want   bool
	}{
		{"far apart", 0, 0, 10, 200, 200, 10, false},
		{"overlapping", 0, 0, 10, 5, 5, 10, true},
		// Centers (10,0) and (30,0): distance 20 == 10+10
		{"touching", 0, -10, 10, 20, -10, 10, true},
		{"just apart", 0, -10, 10, 20.01, -10, 10, false},
		// Anchors are offset by each radius before comparing
		{"radius offsets center", 100, 100, 50, 200, 200, 10, false},
		{"coincident", 50, 50, 10, 50, 50, 10, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newActor(tc.ax, tc.ay, 0, 0, tc.ar, 1, bounds)
			b := newActor(tc.bx, tc.by, 0, 0, tc.br, 1, bounds)
			if got := CheckCollision(a, b); got != tc.want {
				t.Errorf("CheckCollision(a,b) = %v, want %v", got, tc.want)
			}
			if got := CheckCollision(b, a); got != tc.want {
				t.Errorf("CheckCollision(b,a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCheckCollisionNilSafe(t *testing.T) {
	a := newActor(0, 0, 0, 0, 10, 1, components.Bounds{})
	if CheckCollision(a, Actor{}) || CheckCollision(Actor{}, a) || CheckCollision(Actor{}, Actor{}) {
		t.Error("invalid actors must never collide")
	}
}

func TestContact(t *testing.T) {
	bounds := components.Bounds{W: 1000, H: 1000}
	// Centers: a at (40,10), b at (10,10)
	a := newActor(30, 0, 0, 0, 10, 1, bounds)
	b := newActor(-10, -10, 0, 0, 20, 1, bounds)

	c := Contact(a, b)
	if math.Abs(c.Distance-30) > 1e-9 {
		t.Errorf("distance = %f, want 30", c.Distance)
	}
	if math.Abs(c.Normal.X-1) > 1e-9 || math.Abs(c.Normal.Y) > 1e-9 {
		t.Errorf("normal = %+v, want (1,0)", c.Normal)
	}
	if c.Overlap != 0 || c.Penetrating() {
		t.Errorf("overlap = %f, want 0", c.Overlap)
	}

	t.Run("coincident centers", func(t *testing.T) {
		a := newActor(0, 0, 1, 0, 10, 1, bounds)
		b := newActor(0, 0, -1, 0, 10, 1, bounds)
		c := Contact(a, b)
		if math.IsNaN(c.Normal.X) || math.IsNaN(c.Normal.Y) {
			t.Fatal("normal is NaN")
		}
		if c.Overlap <= 19 {
			t.Errorf("overlap = %f, want ~20", c.Overlap)
		}
	})
}

func TestSeparate(t *testing.T) {
	bounds := components.Bounds{W: 1000, H: 1000}
	// Centers: a at (110,100), b at (100,100), radii 10 each: overlap 10
	a := newActor(100, 90, -1, 0, 10, 1, bounds)
	b := newActor(90, 90, 1, 0, 10, 1, bounds)

	c := Contact(a, b)
	if math.Abs(c.Overlap-10) > 1e-9 {
		t.Fatalf("overlap = %f, want 10", c.Overlap)
	}
	Separate(a, b, c, 0.6)

	if math.Abs(a.Pos.X-106) > 1e-9 {
		t.Errorf("a.X = %f, want 106", a.Pos.X)
	}
	if math.Abs(b.Pos.X-86) > 1e-9 {
		t.Errorf("b.X = %f, want 86", b.Pos.X)
	}
	if a.Dir.DX != 1 || b.Dir.DX != -1 {
		t.Errorf("directions not reflected: a=%v b=%v", a.Dir.DX, b.Dir.DX)
	}

	// After separation the pair just touches
	c2 := Contact(a, b)
	if c2.Overlap > 1e-9 {
		t.Errorf("residual overlap %f", c2.Overlap)
	}
}

func TestSeparateNoOverlapNoOp(t *testing.T) {
	bounds := components.Bounds{W: 1000, H: 1000}
	a := newActor(0, 0, 1, 0, 10, 1, bounds)
	b := newActor(500, 500, 1, 0, 10, 1, bounds)
	Separate(a, b, Contact(a, b), 0.6)
	if a.Pos.X != 0 || b.Pos.X != 500 || a.Dir.DX != 1 || b.Dir.DX != 1 {
		t.Error("separate must not touch non-penetrating pairs")
	}
}

func TestKnockback(t *testing.T) {
	bounds := components.Bounds{W: 1000, H: 1000}
	a := newActor(100, 100, 0, 0, 10, 1, bounds)
	b := newActor(100, 80, 0, 0, 10, 1, bounds)
	Knockback(a, Contact(a, b), 12)
	if math.Abs(a.Pos.Y-112) > 1e-9 || a.Pos.X != 100 {
		t.Errorf("pos = (%f,%f), want (100,112)", a.Pos.X, a.Pos.Y)
	}
}
