package layout

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestOrnamentsCountAndScale(t *testing.T) {
	for _, count := range []int{2, 3, 10, 60, 500} {
		got, err := Ornaments(count, newRand())
		if err != nil {
			t.Fatalf("Ornaments(%d): %v", count, err)
		}
		if len(got) != count {
			t.Fatalf("Ornaments(%d) returned %d points", count, len(got))
		}
		for i, o := range got {
			if o.Scale < 0.10 || o.Scale > 0.25 {
				t.Errorf("count %d: ornament %d scale %v outside [0.10, 0.25]", count, i, o.Scale)
			}
		}
	}
}

func TestOrnamentsGoldenAngleStep(t *testing.T) {
	got, err := Ornaments(60, newRand())
	if err != nil {
		t.Fatal(err)
	}
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 1; i < len(got); i++ {
		prev := math.Atan2(float64(got[i-1].Position[2]), float64(got[i-1].Position[0]))
		cur := math.Atan2(float64(got[i].Position[2]), float64(got[i].Position[0]))
		step := math.Mod(cur-prev+4*math.Pi, 2*math.Pi)
		if math.Abs(step-golden) > 1e-3 {
			t.Fatalf("step %d->%d = %v, want golden angle %v", i-1, i, step, golden)
		}
	}
}

func TestOrnamentsSweepTopToBottom(t *testing.T) {
	got, err := Ornaments(20, newRand())
	if err != nil {
		t.Fatal(err)
	}
	if top := got[0].Position[1]; math.Abs(float64(top-1.5)) > 1e-5 {
		t.Errorf("first ornament y = %v, want 1.5", top)
	}
	if bottom := got[len(got)-1].Position[1]; math.Abs(float64(bottom+3.5)) > 1e-5 {
		t.Errorf("last ornament y = %v, want -3.5", bottom)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Position[1] >= got[i-1].Position[1] {
			t.Fatalf("ornament %d not below ornament %d", i, i-1)
		}
		r0 := math.Hypot(float64(got[i-1].Position[0]), float64(got[i-1].Position[2]))
		r1 := math.Hypot(float64(got[i].Position[0]), float64(got[i].Position[2]))
		if r1 <= r0 {
			t.Fatalf("radius should widen going down: %v then %v", r0, r1)
		}
	}
}

func TestOrnamentsDistinct(t *testing.T) {
	got, err := Ornaments(60, newRand())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 60 {
		t.Fatalf("got %d ornaments", len(got))
	}
	seen := make(map[[3]float32]int, len(got))
	for i, o := range got {
		if j, dup := seen[o.Position]; dup {
			t.Fatalf("ornaments %d and %d share position %v", j, i, o.Position)
		}
		seen[o.Position] = i
	}
}

func TestOrnamentsShapeIgnoresRand(t *testing.T) {
	a, _ := Ornaments(30, rand.New(rand.NewPCG(1, 2)))
	b, _ := Ornaments(30, rand.New(rand.NewPCG(3, 4)))
	for i := range a {
		if a[i].Position != b[i].Position {
			t.Fatalf("position %d differs between seeds", i)
		}
	}
}

func TestOrnamentsRejectsSmallCounts(t *testing.T) {
	for _, count := range []int{-1, 0, 1} {
		got, err := Ornaments(count, newRand())
		if !errors.Is(err, ErrTooFewOrnaments) {
			t.Errorf("Ornaments(%d) err = %v, want ErrTooFewOrnaments", count, err)
		}
		if got != nil {
			t.Errorf("Ornaments(%d) returned geometry", count)
		}
	}
}

func TestLights(t *testing.T) {
	for _, count := range []int{1, 2, 40, 333} {
		got, err := Lights(count)
		if err != nil {
			t.Fatalf("Lights(%d): %v", count, err)
		}
		if len(got) != count {
			t.Fatalf("Lights(%d) returned %d", count, len(got))
		}
		prev := math.Inf(1)
		for i, l := range got {
			r := math.Hypot(float64(l.Position[0]), float64(l.Position[2]))
			if r >= prev {
				t.Fatalf("count %d: radius %d = %v not below %v", count, i, r, prev)
			}
			prev = r
		}
	}
}

func TestLightsHelix(t *testing.T) {
	got, err := Lights(40)
	if err != nil {
		t.Fatal(err)
	}
	first := got[0].Position
	if first != [3]float32{2.2, -3, 0} {
		t.Errorf("first light = %v, want (2.2, -3, 0)", first)
	}
	// 40 bulbs over 6 turns: every 20th bulb is back on the +X axis, three turns up.
	half := got[20].Position
	if math.Abs(math.Atan2(float64(half[2]), float64(half[0]))) > 1e-4 {
		t.Errorf("light 20 at %v, want on the +X axis", half)
	}
	if math.Abs(float64(half[1])) > 1e-5 {
		t.Errorf("light 20 y = %v, want 0", half[1])
	}
}

func TestLightsDeterministic(t *testing.T) {
	a, _ := Lights(40)
	b, _ := Lights(40)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("light %d differs between calls", i)
		}
	}
}

func TestLightsRejectsZero(t *testing.T) {
	if _, err := Lights(0); !errors.Is(err, ErrTooFewLights) {
		t.Fatalf("err = %v, want ErrTooFewLights", err)
	}
}

func TestCacheMemoizesByCount(t *testing.T) {
	c := NewCache(newRand())
	a, err := c.Ornaments(60)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Ornaments(60)
	if err != nil {
		t.Fatal(err)
	}
	if &a[0] != &b[0] {
		t.Fatal("same count recomputed ornaments")
	}
	d, err := c.Ornaments(30)
	if err != nil {
		t.Fatal(err)
	}
	if len(d) != 30 {
		t.Fatalf("count change returned %d ornaments", len(d))
	}

	l1, _ := c.Lights(40)
	l2, _ := c.Lights(40)
	if &l1[0] != &l2[0] {
		t.Fatal("same count recomputed lights")
	}
	if l3, _ := c.Lights(10); len(l3) != 10 {
		t.Fatalf("lights count change returned %d", len(l3))
	}
}

func TestCacheKeepsLastGoodOnError(t *testing.T) {
	c := NewCache(newRand())
	a, _ := c.Ornaments(12)
	if _, err := c.Ornaments(1); !errors.Is(err, ErrTooFewOrnaments) {
		t.Fatalf("err = %v", err)
	}
	b, _ := c.Ornaments(12)
	if &a[0] != &b[0] {
		t.Fatal("failed request evicted the cached layout")
	}
}

func TestCheckCounts(t *testing.T) {
	tests := []struct {
		ornaments, lights int
		want              error
	}{
		{60, 40, nil},
		{2, 1, nil},
		{1, 40, ErrTooFewOrnaments},
		{60, 0, ErrTooFewLights},
		{0, 0, ErrTooFewOrnaments},
	}
	for _, tt := range tests {
		err := CheckCounts(tt.ornaments, tt.lights)
		if tt.want == nil && err != nil || tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("CheckCounts(%d, %d) = %v, want %v", tt.ornaments, tt.lights, err, tt.want)
		}
	}
}
