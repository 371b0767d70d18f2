package core

import "testing"

func TestRandDeterminism(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)

	for i := 0; i < 100; i++ {
		if a.Float() != b.Float() {
			t.Fatalf("same seed produced different values at step %d", i)
		}
	}
}

func TestRandRange(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 1000; i++ {
		v := r.Range(0.8, 3.0)
		if v < 0.8 || v >= 3.0 {
			t.Fatalf("Range(0.8, 3.0) = %f, out of bounds", v)
		}
	}
}

func TestRandChance(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) should never succeed")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) should always succeed")
		}
	}
}

func TestRandSignAndIntn(t *testing.T) {
	r := NewRand(3)
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		s := r.Sign()
		if s != 1 && s != -1 {
			t.Fatalf("Sign() = %f, expected -1 or 1", s)
		}
		seen[s] = true
	}
	if len(seen) != 2 {
		t.Error("Sign() should produce both directions")
	}

	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
	for i := 0; i < 100; i++ {
		if v := r.Intn(20); v < 0 || v >= 20 {
			t.Fatalf("Intn(20) = %d, out of bounds", v)
		}
	}
}
