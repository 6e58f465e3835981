package gen

import (
	"testing"

	"github.com/qcheck-go/qcheck/rng"
)

func TestUint(t *testing.T) {
	g := Uint(100)
	r := rng.New(123, 100)

	value, shrink := g.Generate(r)

	if value > 100 {
		t.Errorf("Uint().Generate() = %d, expected value in range [0, 100]", value)
	}

	if shrink == nil {
		t.Error("Uint().Generate() returned nil shrinker")
	}
}

func TestUintRange(t *testing.T) {
	g := UintRange(10, 20)
	r := rng.New(123, 100)

	value, shrink := g.Generate(r)

	if value < 10 || value > 20 {
		t.Errorf("UintRange().Generate() = %d, expected value in range [10, 20]", value)
	}

	if shrink == nil {
		t.Error("UintRange().Generate() returned nil shrinker")
	}
}

func TestUintShrinker(t *testing.T) {
	start, shrink := unsignedShrinkInit[uint](50, 0, 100)

	if start != 50 {
		t.Errorf("unsignedShrinkInit() start = %d, expected 50", start)
	}

	if shrink == nil {
		t.Error("unsignedShrinkInit() returned nil shrinker")
	}

	next, ok := shrink(false)
	if !ok {
		t.Error("Uint shrinker returned false on first call")
	}

	if next > 100 {
		t.Errorf("Uint shrinker returned value %d outside range [0, 100]", next)
	}
}

func TestUint64(t *testing.T) {
	g := Uint64(100)
	r := rng.New(123, 100)

	value, shrink := g.Generate(r)

	if value > 100 {
		t.Errorf("Uint64().Generate() = %d, expected value in range [0, 100]", value)
	}

	if shrink == nil {
		t.Error("Uint64().Generate() returned nil shrinker")
	}
}

func TestUint64Range(t *testing.T) {
	g := Uint64Range(10, 20)
	r := rng.New(123, 100)

	value, shrink := g.Generate(r)

	if value < 10 || value > 20 {
		t.Errorf("Uint64Range().Generate() = %d, expected value in range [10, 20]", value)
	}

	if shrink == nil {
		t.Error("Uint64Range().Generate() returned nil shrinker")
	}
}

func TestUint64Shrinker(t *testing.T) {
	start, shrink := unsignedShrinkInit[uint64](50, 0, 100)

	if start != 50 {
		t.Errorf("unsignedShrinkInit() start = %d, expected 50", start)
	}

	if shrink == nil {
		t.Error("unsignedShrinkInit() returned nil shrinker")
	}

	next, ok := shrink(false)
	if !ok {
		t.Error("Uint64 shrinker returned false on first call")
	}

	if next > 100 {
		t.Errorf("Uint64 shrinker returned value %d outside range [0, 100]", next)
	}
}
