//go:build demo

// Package examples demonstrates how to use the qcheck property-based
// testing library. These examples show various testing patterns and how
// the shrinking mechanism helps find minimal counterexamples when
// properties fail.
package examples

import (
	"testing"

	"github.com/qcheck-go/qcheck/gen"
	"github.com/qcheck-go/qcheck/prop"
)

// Test_String_AlwaysEmpty demonstrates a property-based test that is
// designed to fail: it verifies the false property "all generated strings
// are empty", showing shrinking converge on the minimal counterexample.
func Test_String_AlwaysEmpty(t *testing.T) {
	prop.ForAll(t, prop.Default(), gen.StringAlphaNum(0, 32))(
		func(t *testing.T, s string) {
			if s != "" {
				t.Fatalf("expected empty string, got %q", s)
			}
		},
	)
}
