package testable

import (
	"fmt"

	"github.com/qcheck-go/qcheck/gen"
	"github.com/qcheck-go/qcheck/rng"
)

// Testable is anything the driver can check: given randomness, produce a
// Checked describing the outcome and the lazy sequence of shrunk variants.
type Testable interface {
	Check(g rng.Gen) Checked
}

// Checked is the result of evaluating a Testable once.
type Checked struct {
	Outcome Outcome
	Witness []string
	Next    func(accept bool) (Testable, bool)
}

func noShrink() func(accept bool) (Testable, bool) {
	return func(bool) (Testable, bool) { return nil, false }
}

// safeEval runs f, converting any panic into a Failed outcome. This is the
// driver's sole mechanism for turning a runtime abort inside user code into
// a shrinkable counter-example.
func safeEval(f func() Outcome) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Fail(fmt.Errorf("panic: %v", r))
		}
	}()
	return f()
}

// boolProp lifts a bare boolean: no arguments, no shrink.
type boolProp bool

// Bool lifts a boolean predicate result directly.
func Bool(b bool) Testable { return boolProp(b) }

func (b boolProp) Check(rng.Gen) Checked {
	return Checked{Outcome: FromBool(bool(b)), Next: noShrink()}
}

// outcomeProp lifts a bare Outcome: no arguments, no shrink.
type outcomeProp Outcome

// FromOutcome lifts an already-constructed Outcome directly.
func FromOutcome(o Outcome) Testable { return outcomeProp(o) }

func (o outcomeProp) Check(rng.Gen) Checked {
	return Checked{Outcome: Outcome(o), Next: noShrink()}
}

// thunk lifts a nullary function returning another Testable, catching any
// panic raised while the function runs to produce it.
type thunk func() Testable

// Func0 lifts a nullary function.
func Func0(f func() Testable) Testable { return thunk(f) }

func (t thunk) Check(g rng.Gen) Checked {
	var inner Testable
	abort := safeEval(func() Outcome {
		inner = t()
		return Pass()
	})
	if abort.Status == Failed {
		return Checked{Outcome: abort, Next: noShrink()}
	}
	return inner.Check(g)
}

// render produces a witness string for a value of any type in the catalog.
func render(v any) string { return fmt.Sprintf("%#v", v) }

// ---- arity 1 ----

type root1[A any] struct {
	ga gen.Generator[A]
	f  func(A) Outcome
}

// Func1 lifts a 1-argument predicate returning a rich Outcome.
func Func1[A any](ga gen.Generator[A], f func(A) Outcome) Testable { return root1[A]{ga, f} }

// Func1Bool lifts a 1-argument boolean predicate.
func Func1Bool[A any](ga gen.Generator[A], f func(A) bool) Testable {
	return Func1(ga, func(a A) Outcome { return FromBool(f(a)) })
}

func (r root1[A]) Check(g rng.Gen) Checked {
	a, sa := r.ga.Generate(g)
	return arg1[A]{f: r.f, a: a, sa: sa}.eval()
}

type arg1[A any] struct {
	f  func(A) Outcome
	a  A
	sa gen.Shrinker[A]
}

func (p arg1[A]) Check(rng.Gen) Checked { return p.eval() }

func (p arg1[A]) eval() Checked {
	witness := []string{render(p.a)}
	out := safeEval(func() Outcome { return p.f(p.a) })
	return Checked{
		Outcome: out,
		Witness: witness,
		Next: func(accept bool) (Testable, bool) {
			na, ok := p.sa(accept)
			if !ok {
				return nil, false
			}
			return arg1[A]{f: p.f, a: na, sa: p.sa}, true
		},
	}
}

// ---- arity 2 ----

type root2[A, B any] struct {
	ga gen.Generator[A]
	gb gen.Generator[B]
	f  func(A, B) Outcome
}

// Func2 lifts a 2-argument predicate returning a rich Outcome.
func Func2[A, B any](ga gen.Generator[A], gb gen.Generator[B], f func(A, B) Outcome) Testable {
	return root2[A, B]{ga, gb, f}
}

// Func2Bool lifts a 2-argument boolean predicate.
func Func2Bool[A, B any](ga gen.Generator[A], gb gen.Generator[B], f func(A, B) bool) Testable {
	return Func2(ga, gb, func(a A, b B) Outcome { return FromBool(f(a, b)) })
}

func (r root2[A, B]) Check(g rng.Gen) Checked {
	val, s := gen.Tuple2(r.ga, r.gb).Generate(g)
	return arg2[A, B]{f: r.f, val: val, s: s}.eval()
}

type arg2[A, B any] struct {
	f   func(A, B) Outcome
	val gen.Pair[A, B]
	s   gen.Shrinker[gen.Pair[A, B]]
}

func (p arg2[A, B]) Check(rng.Gen) Checked { return p.eval() }

func (p arg2[A, B]) eval() Checked {
	witness := []string{render(p.val.First), render(p.val.Second)}
	out := safeEval(func() Outcome { return p.f(p.val.First, p.val.Second) })
	return Checked{
		Outcome: out,
		Witness: witness,
		Next: func(accept bool) (Testable, bool) {
			nv, ok := p.s(accept)
			if !ok {
				return nil, false
			}
			return arg2[A, B]{f: p.f, val: nv, s: p.s}, true
		},
	}
}

// ---- arity 3 ----

type root3[A, B, C any] struct {
	ga gen.Generator[A]
	gb gen.Generator[B]
	gc gen.Generator[C]
	f  func(A, B, C) Outcome
}

// Func3 lifts a 3-argument predicate returning a rich Outcome.
func Func3[A, B, C any](ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], f func(A, B, C) Outcome) Testable {
	return root3[A, B, C]{ga, gb, gc, f}
}

// Func3Bool lifts a 3-argument boolean predicate.
func Func3Bool[A, B, C any](ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], f func(A, B, C) bool) Testable {
	return Func3(ga, gb, gc, func(a A, b B, c C) Outcome { return FromBool(f(a, b, c)) })
}

func (r root3[A, B, C]) Check(g rng.Gen) Checked {
	val, s := gen.Tuple3(r.ga, r.gb, r.gc).Generate(g)
	return arg3[A, B, C]{f: r.f, val: val, s: s}.eval()
}

type arg3[A, B, C any] struct {
	f   func(A, B, C) Outcome
	val gen.Triple[A, B, C]
	s   gen.Shrinker[gen.Triple[A, B, C]]
}

func (p arg3[A, B, C]) Check(rng.Gen) Checked { return p.eval() }

func (p arg3[A, B, C]) eval() Checked {
	witness := []string{render(p.val.First), render(p.val.Second), render(p.val.Third)}
	out := safeEval(func() Outcome { return p.f(p.val.First, p.val.Second, p.val.Third) })
	return Checked{
		Outcome: out,
		Witness: witness,
		Next: func(accept bool) (Testable, bool) {
			nv, ok := p.s(accept)
			if !ok {
				return nil, false
			}
			return arg3[A, B, C]{f: p.f, val: nv, s: p.s}, true
		},
	}
}

// ---- arity 4 ----

type root4[A, B, C, D any] struct {
	ga gen.Generator[A]
	gb gen.Generator[B]
	gc gen.Generator[C]
	gd gen.Generator[D]
	f  func(A, B, C, D) Outcome
}

// Func4 lifts a 4-argument predicate returning a rich Outcome.
func Func4[A, B, C, D any](ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], gd gen.Generator[D], f func(A, B, C, D) Outcome) Testable {
	return root4[A, B, C, D]{ga, gb, gc, gd, f}
}

// Func4Bool lifts a 4-argument boolean predicate.
func Func4Bool[A, B, C, D any](ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], gd gen.Generator[D], f func(A, B, C, D) bool) Testable {
	return Func4(ga, gb, gc, gd, func(a A, b B, c C, d D) Outcome { return FromBool(f(a, b, c, d)) })
}

func (r root4[A, B, C, D]) Check(g rng.Gen) Checked {
	val, s := gen.Tuple4(r.ga, r.gb, r.gc, r.gd).Generate(g)
	return arg4[A, B, C, D]{f: r.f, val: val, s: s}.eval()
}

type arg4[A, B, C, D any] struct {
	f   func(A, B, C, D) Outcome
	val gen.Quad[A, B, C, D]
	s   gen.Shrinker[gen.Quad[A, B, C, D]]
}

func (p arg4[A, B, C, D]) Check(rng.Gen) Checked { return p.eval() }

func (p arg4[A, B, C, D]) eval() Checked {
	witness := []string{render(p.val.First), render(p.val.Second), render(p.val.Third), render(p.val.Fourth)}
	out := safeEval(func() Outcome { return p.f(p.val.First, p.val.Second, p.val.Third, p.val.Fourth) })
	return Checked{
		Outcome: out,
		Witness: witness,
		Next: func(accept bool) (Testable, bool) {
			nv, ok := p.s(accept)
			if !ok {
				return nil, false
			}
			return arg4[A, B, C, D]{f: p.f, val: nv, s: p.s}, true
		},
	}
}
