package gen

import (
	"testing"

	"github.com/qcheck-go/qcheck/rng"
)

func TestInt64(t *testing.T) {
	g := Int64(100)
	r := rng.New(123, 100)

	value, shrink := g.Generate(r)

	if value < -100 || value > 100 {
		t.Errorf("Int64().Generate() = %d, expected value in range [-100, 100]", value)
	}

	if shrink == nil {
		t.Error("Int64().Generate() returned nil shrinker")
	}
}

func TestInt64Range(t *testing.T) {
	g := Int64Range(10, 20)
	r := rng.New(123, 100)

	value, shrink := g.Generate(r)

	if value < 10 || value > 20 {
		t.Errorf("Int64Range().Generate() = %d, expected value in range [10, 20]", value)
	}

	if shrink == nil {
		t.Error("Int64Range().Generate() returned nil shrinker")
	}
}

func TestInt64Shrinker(t *testing.T) {
	start, shrink := int64ShrinkInit(50, 0, 100)

	if start != 50 {
		t.Errorf("int64ShrinkInit() start = %d, expected 50", start)
	}

	if shrink == nil {
		t.Error("int64ShrinkInit() returned nil shrinker")
	}

	next, ok := shrink(false)
	if !ok {
		t.Error("Int64 shrinker returned false on first call")
	}

	if next < 0 || next > 100 {
		t.Errorf("Int64 shrinker returned value %d outside range [0, 100]", next)
	}
}
