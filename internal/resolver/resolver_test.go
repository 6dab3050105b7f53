package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declgraph/declorder/internal/decltree"
	"github.com/declgraph/declorder/internal/depgraph"
	"github.com/declgraph/declorder/internal/diagnostics"
	"github.com/declgraph/declorder/internal/typegraph"
)

type emit struct {
	name  string
	state depgraph.State
}

func recordingEmit(order *[]emit) EmitFunc {
	return func(_ *ResolverContext, target Target, state depgraph.State) error {
		*order = append(*order, emit{name: target.Decl.Name(), state: state})
		return nil
	}
}

func indexOf(order []emit, name string, state depgraph.State) int {
	for i, e := range order {
		if e.name == name && e.state == state {
			return i
		}
	}
	return -1
}

// TestPointerCycleBreaksAndBothClassesComplete covers the classic mutual-
// pointer scenario: two classes holding pointers to each other. Neither
// forward-declare both classes explicitly — the exact shape of which
// declaration gets an independent Partial emit is order-dependent (the
// second one visited can already be satisfied transitively once the first
// reaches Complete) — but both must ultimately reach Complete, and every
// pointer dependency's forward form must be visible (emitted, at any
// state) strictly before the Complete that needed it.
func TestPointerCycleBreaksAndBothClassesComplete(t *testing.T) {
	arena := decltree.NewArena()
	a := arena.NewClass("A", nil, 0)
	b := arena.NewClass("B", nil, 0)
	a.AddMember("b", typegraph.Qualified{Inner: typegraph.Declared{Decl: b}, Qualifier: typegraph.Pointer}, decltree.Public)
	b.AddMember("a", typegraph.Qualified{Inner: typegraph.Declared{Decl: a}, Qualifier: typegraph.Pointer}, decltree.Public)

	var order []emit
	targets := []Target{
		{Decl: a, State: depgraph.Complete},
		{Decl: b, State: depgraph.Complete},
	}
	stats, err := Run(arena, targets, recordingEmit(&order), Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Complete)

	aComplete := indexOf(order, "A", depgraph.Complete)
	bComplete := indexOf(order, "B", depgraph.Complete)
	require.GreaterOrEqual(t, aComplete, 0)
	require.GreaterOrEqual(t, bComplete, 0)

	// A@Complete needs B visible at Partial: either B@Partial was emitted
	// first, or B@Complete already was (Complete subsumes Partial).
	bVisibleBeforeA := indexOf(order, "B", depgraph.Partial) != -1 && indexOf(order, "B", depgraph.Partial) < aComplete
	bVisibleBeforeA = bVisibleBeforeA || bComplete < aComplete
	assert.True(t, bVisibleBeforeA, "B must be visible before A@Complete: %v", order)

	aVisibleBeforeB := indexOf(order, "A", depgraph.Partial) != -1 && indexOf(order, "A", depgraph.Partial) < bComplete
	aVisibleBeforeB = aVisibleBeforeB || aComplete < bComplete
	assert.True(t, aVisibleBeforeB, "A must be visible before B@Complete: %v", order)
}

// TestValueMemberForcesContainerOrderNoForwardDecl covers a bare-value
// member: class A has a bare (non-pointer) field of class B. B must be emitted at
// Complete before A@Complete, and B never needs a separate Partial form.
func TestValueMemberForcesContainerOrderNoForwardDecl(t *testing.T) {
	arena := decltree.NewArena()
	b := arena.NewClass("B", nil, 0)
	b.AddMember("x", typegraph.Named{Name: "int"}, decltree.Public)
	a := arena.NewClass("A", nil, 0)
	a.AddMember("b", typegraph.Declared{Decl: b}, decltree.Public)

	var order []emit
	targets := []Target{
		{Decl: a, State: depgraph.Complete},
		{Decl: b, State: depgraph.Complete},
	}
	_, err := Run(arena, targets, recordingEmit(&order), Config{})
	require.NoError(t, err)

	bComplete := indexOf(order, "B", depgraph.Complete)
	aComplete := indexOf(order, "A", depgraph.Complete)
	require.GreaterOrEqual(t, bComplete, 0)
	require.GreaterOrEqual(t, aComplete, 0)
	assert.Less(t, bComplete, aComplete, "B@Complete must precede A@Complete: %v", order)
	assert.Equal(t, -1, indexOf(order, "B", depgraph.Partial), "B should never need a forward declaration here")
}

// TestValueCycleIsFatal covers two classes each holding a bare value field
// of the other. This cycle cannot be broken by a
// forward declaration (both sides demand Complete), so resolution must
// fail with a CycleError whose reason chain mentions both declarations.
func TestValueCycleIsFatal(t *testing.T) {
	arena := decltree.NewArena()
	a := arena.NewClass("A", nil, 0)
	b := arena.NewClass("B", nil, 0)
	a.AddMember("b", typegraph.Declared{Decl: b}, decltree.Public)
	b.AddMember("a", typegraph.Declared{Decl: a}, decltree.Public)

	targets := []Target{
		{Decl: a, State: depgraph.Complete},
		{Decl: b, State: depgraph.Complete},
	}
	_, err := Run(arena, targets, recordingEmit(&[]emit{}), Config{})
	require.Error(t, err)

	var rerr *diagnostics.ResolutionError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, diagnostics.CycleError, rerr.Kind)
	chain := rerr.Reason.String()
	assert.Contains(t, chain, "A@")
	assert.Contains(t, chain, "B@")
}

// TestValueCycleIgnoreErrorsEmitsAnyway exercises the escape hatch: with
// IgnoreErrors set, the same unbreakable cycle emits at the demanded state
// instead of failing.
func TestValueCycleIgnoreErrorsEmitsAnyway(t *testing.T) {
	arena := decltree.NewArena()
	a := arena.NewClass("A", nil, 0)
	b := arena.NewClass("B", nil, 0)
	a.AddMember("b", typegraph.Declared{Decl: b}, decltree.Public)
	b.AddMember("a", typegraph.Declared{Decl: a}, decltree.Public)

	var order []emit
	targets := []Target{
		{Decl: a, State: depgraph.Complete},
		{Decl: b, State: depgraph.Complete},
	}
	_, err := Run(arena, targets, recordingEmit(&order), Config{IgnoreErrors: true})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, indexOf(order, "A", depgraph.Complete), 0)
}

// TestVariableEmitsItsTypeFirst covers resolving `extern T* v;` at
// Partial: it must first emit T@Partial.
func TestVariableEmitsItsTypeFirst(t *testing.T) {
	arena := decltree.NewArena()
	typ := arena.NewClass("T", nil, 0)
	v := arena.NewVariable("v", typegraph.Qualified{Inner: typegraph.Declared{Decl: typ}, Qualifier: typegraph.Pointer}, nil, decltree.Extern)

	var order []emit
	targets := []Target{
		{Decl: typ, State: depgraph.Partial},
		{Decl: v, State: depgraph.Partial},
	}
	_, err := Run(arena, targets, recordingEmit(&order), Config{})
	require.NoError(t, err)

	tIdx := indexOf(order, "T", depgraph.Partial)
	vIdx := indexOf(order, "v", depgraph.Partial)
	require.GreaterOrEqual(t, tIdx, 0)
	require.GreaterOrEqual(t, vIdx, 0)
	assert.Less(t, tIdx, vIdx)
}

// TestInnerClassRequiresOuterComplete covers resolving a nested class at
// Complete: it must first resolve its enclosing class at Complete,
// provided the outer is itself tracked as a target.
func TestInnerClassRequiresOuterComplete(t *testing.T) {
	arena := decltree.NewArena()
	outer := arena.NewClass("Outer", nil, 0)
	inner := arena.NewClass("Inner", outer, 0)
	inner.AddMember("x", typegraph.Named{Name: "int"}, decltree.Public)

	var order []emit
	targets := []Target{
		{Decl: outer, State: depgraph.Complete},
		{Decl: inner, State: depgraph.Complete},
	}
	_, err := Run(arena, targets, recordingEmit(&order), Config{})
	require.NoError(t, err)

	outerIdx := indexOf(order, "Outer", depgraph.Complete)
	innerIdx := indexOf(order, "Inner", depgraph.Complete)
	require.GreaterOrEqual(t, outerIdx, 0)
	require.GreaterOrEqual(t, innerIdx, 0)
	assert.Less(t, outerIdx, innerIdx, "Outer@Complete must precede Inner@Complete: %v", order)
}

// TestChildResolvedWhenContainerReachesCompleteEvenUntargeted covers
// Children()'s contract directly: Inner is never listed as a target and no
// dependency edge anywhere points at it, yet it must still be emitted once
// Outer reaches Complete, since a genuine nested declaration has to be
// resolved alongside its container.
func TestChildResolvedWhenContainerReachesCompleteEvenUntargeted(t *testing.T) {
	arena := decltree.NewArena()
	outer := arena.NewClass("Outer", nil, 0)
	inner := arena.NewClass("Inner", outer, 0)
	inner.AddMember("x", typegraph.Named{Name: "int"}, decltree.Public)

	var order []emit
	targets := []Target{{Decl: outer, State: depgraph.Complete}}
	_, err := Run(arena, targets, recordingEmit(&order), Config{})
	require.NoError(t, err)

	outerIdx := indexOf(order, "Outer", depgraph.Complete)
	innerIdx := indexOf(order, "Inner", depgraph.Complete)
	require.GreaterOrEqual(t, outerIdx, 0)
	require.GreaterOrEqual(t, innerIdx, 0, "Inner must be emitted even though it was never a target: %v", order)
	assert.Less(t, outerIdx, innerIdx)
}

// TestTargetStateClampedToMaxState covers a caller requesting a state a
// declaration kind can never reach — a Variable asked for Complete — which
// must clamp down to the declaration's own MaxState() rather than ever
// emitting a Variable@Complete.
func TestTargetStateClampedToMaxState(t *testing.T) {
	arena := decltree.NewArena()
	typ := arena.NewClass("T", nil, 0)
	v := arena.NewVariable("v", typegraph.Declared{Decl: typ}, nil, decltree.Extern)

	var order []emit
	targets := []Target{
		{Decl: typ, State: depgraph.Partial},
		{Decl: v, State: depgraph.Complete},
	}
	stats, err := Run(arena, targets, recordingEmit(&order), Config{})
	require.NoError(t, err)

	assert.Equal(t, -1, indexOf(order, "v", depgraph.Complete), "Variable must never be emitted at Complete: %v", order)
	assert.GreaterOrEqual(t, indexOf(order, "v", depgraph.Partial), 0)
	assert.Equal(t, 0, stats.Complete)
}

// TestMemberTypePromotesContainerToComplete covers a function whose return
// type is a nested-type reference (`C::iterator`): it demands C@Complete
// even though the function itself only resolves to Partial.
func TestMemberTypePromotesContainerToComplete(t *testing.T) {
	arena := decltree.NewArena()
	c := arena.NewClass("C", nil, 0)
	fn := arena.NewFunction("make", typegraph.Member{Inner: typegraph.Declared{Decl: c}, Field: "iterator"}, nil, nil, 0)

	var order []emit
	targets := []Target{
		{Decl: c, State: depgraph.Complete},
		{Decl: fn, State: depgraph.Partial},
	}
	_, err := Run(arena, targets, recordingEmit(&order), Config{})
	require.NoError(t, err)

	cIdx := indexOf(order, "C", depgraph.Complete)
	fnIdx := indexOf(order, "make", depgraph.Partial)
	require.GreaterOrEqual(t, cIdx, 0)
	require.GreaterOrEqual(t, fnIdx, 0)
	assert.Less(t, cIdx, fnIdx)
}

// TestNoDuplicateEmits exercises the no-duplication invariant: a
// declaration already resolved to a state must not be emitted again when a
// weaker or equal state is later demanded.
func TestNoDuplicateEmits(t *testing.T) {
	arena := decltree.NewArena()
	t1 := arena.NewClass("T", nil, 0)
	v1 := arena.NewVariable("v1", typegraph.Qualified{Inner: typegraph.Declared{Decl: t1}, Qualifier: typegraph.Pointer}, nil, 0)
	v2 := arena.NewVariable("v2", typegraph.Qualified{Inner: typegraph.Declared{Decl: t1}, Qualifier: typegraph.Pointer}, nil, 0)

	var order []emit
	targets := []Target{
		{Decl: t1, State: depgraph.Partial},
		{Decl: v1, State: depgraph.Partial},
		{Decl: v2, State: depgraph.Partial},
	}
	_, err := Run(arena, targets, recordingEmit(&order), Config{})
	require.NoError(t, err)

	count := 0
	for _, e := range order {
		if e.name == "T" && e.state == depgraph.Partial {
			count++
		}
	}
	assert.Equal(t, 1, count, "T@Partial emitted more than once: %v", order)
}

// TestMissingDependencyIsSilentlySkipped exercises the non-fatal case: a
// dependency on a declaration with no tracked target anywhere in its
// ancestry is dropped rather than failing the run.
func TestMissingDependencyIsSilentlySkipped(t *testing.T) {
	arena := decltree.NewArena()
	untracked := arena.NewClass("Untracked", nil, 0)
	a := arena.NewClass("A", nil, 0)
	a.AddMember("u", typegraph.Qualified{Inner: typegraph.Declared{Decl: untracked}, Qualifier: typegraph.Pointer}, decltree.Public)

	var order []emit
	targets := []Target{{Decl: a, State: depgraph.Complete}}
	_, err := Run(arena, targets, recordingEmit(&order), Config{})
	require.NoError(t, err)
	assert.Equal(t, -1, indexOf(order, "Untracked", depgraph.Partial))
	assert.GreaterOrEqual(t, indexOf(order, "A", depgraph.Complete), 0)
}

// TestEmitErrorPropagatesUnchanged exercises the fatal case where the emit
// callback's own error is wrapped and surfaced, not swallowed.
func TestEmitErrorPropagatesUnchanged(t *testing.T) {
	arena := decltree.NewArena()
	a := arena.NewClass("A", nil, 0)
	boom := errors.New("disk full")

	_, err := Run(arena, []Target{{Decl: a, State: depgraph.Complete}}, func(*ResolverContext, Target, depgraph.State) error {
		return boom
	}, Config{})

	require.Error(t, err)
	var rerr *diagnostics.ResolutionError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, diagnostics.EmitError, rerr.Kind)
	assert.True(t, errors.Is(err, boom))
}

func TestRemoveDuplicatesKeepsFirst(t *testing.T) {
	arena := decltree.NewArena()
	a := arena.NewClass("A", nil, 0)
	targets := []Target{
		{Decl: a, State: depgraph.Partial},
		{Decl: a, State: depgraph.Complete},
	}
	out := removeDuplicates(targets)
	require.Len(t, out, 1)
	assert.Equal(t, depgraph.Partial, out[0].State)
}
