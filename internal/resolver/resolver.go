// Package resolver implements the depth-first walk that turns a set of
// requested (declaration, completeness) targets into a linear emit order,
// breaking reference cycles via forward declarations and raising a
// diagnostics.ResolutionError when a cycle cannot be broken.
package resolver

import (
	"time"

	"github.com/google/uuid"

	"github.com/declgraph/declorder/internal/config"
	"github.com/declgraph/declorder/internal/decltree"
	"github.com/declgraph/declorder/internal/depgraph"
	"github.com/declgraph/declorder/internal/diagnostics"
)

// Config controls a single run. The zero value resolves strictly: any cycle
// that cannot be broken by a forward declaration aborts the run.
type Config struct {
	// IgnoreErrors makes an otherwise-fatal cycle emit at the demanded
	// state and move on instead of failing the run — an escape hatch,
	// meant as a last resort rather than a default.
	IgnoreErrors bool
}

// DefaultConfig builds a Config seeded from the legacy process-wide
// config.IgnoreErrorsDefault switch, for callers that only ever flip that
// one knob.
func DefaultConfig() Config {
	return Config{IgnoreErrors: config.IgnoreErrorsDefault}
}

// DeclLookup resolves a DeclID back to its Declaration. decltree.Arena
// satisfies this structurally; a resolver accepts anything shaped like it
// so tests can hand in a map-backed stub instead of a real Arena.
type DeclLookup interface {
	Lookup(id depgraph.DeclID) (decltree.Declaration, bool)
}

// Resolver drives one resolution run. Build one with New and call Resolve;
// the package-level Run and ResolveDependencies helpers wrap that for
// callers who don't need to reuse a Resolver across runs.
type Resolver struct {
	lookup  DeclLookup
	emit    EmitFunc
	cfg     Config
	runID   uuid.UUID
	targets map[depgraph.DeclID]Target
	pending map[depgraph.DeclID][]depgraph.State
	stats   diagnostics.RunStats
}

// New builds a Resolver for a single run against the given lookup and emit
// callback. runID tags diagnostics and the returned RunStats.
func New(lookup DeclLookup, emit EmitFunc, cfg Config, runID uuid.UUID) *Resolver {
	return &Resolver{
		lookup:  lookup,
		emit:    emit,
		cfg:     cfg,
		runID:   runID,
		targets: make(map[depgraph.DeclID]Target),
		pending: make(map[depgraph.DeclID][]depgraph.State),
		stats:   diagnostics.RunStats{RunID: runID},
	}
}

// Resolve runs the resolver over targets in the order given, emitting
// whatever each one's dependency closure requires along the way, and
// returns a summary of what was emitted. Duplicate targets (same
// declaration requested twice) are collapsed, keeping the first.
func (r *Resolver) Resolve(targets []Target) (diagnostics.RunStats, error) {
	start := time.Now()
	targets = removeDuplicates(targets)
	for _, t := range targets {
		if t.Decl == nil {
			continue
		}
		r.targets[t.Decl.ID()] = t
	}

	for _, t := range targets {
		if err := r.resolveOne(t.Decl, t.State, depgraph.Root, nil); err != nil {
			r.stats.Elapsed = time.Since(start)
			return r.stats, err
		}
	}
	r.stats.Elapsed = time.Since(start)
	return r.stats, nil
}

// resolveOne implements the resolve(d, s, kind, reason) recursion.
func (r *Resolver) resolveOne(d decltree.Declaration, s depgraph.State, kind depgraph.ReasonKind, parent *diagnostics.Reason) error {
	if s > d.MaxState() {
		s = d.MaxState()
	}
	reason := diagnostics.NewReason(d.ID(), d.Name(), s, kind, parent)

	// Containment promotion: a tracked container must be on the stack,
	// at Complete, before any of its children are touched.
	if p := d.Parent(); p != nil {
		if _, isTarget := r.targets[p.ID()]; isTarget {
			if err := r.resolveOne(p, depgraph.Complete, depgraph.Inner, reason); err != nil {
				return err
			}
		}
	}

	if d.IsResolved(s) {
		return nil
	}

	stack := r.pending[d.ID()]
	if len(stack) > 0 && s >= stack[len(stack)-1] {
		if r.cfg.IgnoreErrors {
			return r.emitOne(d, s, reason)
		}
		return diagnostics.NewCycleError(r.runID, reason)
	}

	r.pending[d.ID()] = append(stack, s)
	defer r.popPending(d.ID())

	deps := d.GetDependencies(s)
	for _, id := range deps.IDs() {
		if err := r.followDependency(id, deps[id], reason); err != nil {
			return err
		}
	}

	if d.IsResolved(s) {
		return nil
	}
	if err := r.emitOne(d, s, reason); err != nil {
		return err
	}
	if s == depgraph.Complete {
		return r.resolveChildren(d, reason)
	}
	return nil
}

// resolveChildren implements Children()'s documented contract: once d
// itself reaches Complete, every nested declaration it owns must be
// resolved too, tagged Inner — the same kind used for containment
// promotion, since both describe "this declaration must be resolved
// because something containing or contained by it is". A child whose own
// MaxState is weaker than Complete is clamped by the recursive resolveOne
// call, same as any other target.
func (r *Resolver) resolveChildren(d decltree.Declaration, parent *diagnostics.Reason) error {
	for _, child := range d.Children() {
		if err := r.resolveOne(child, depgraph.Complete, depgraph.Inner, parent); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) popPending(id depgraph.DeclID) {
	stack := r.pending[id]
	r.pending[id] = stack[:len(stack)-1]
}

// followDependency walks from the directly-demanded declaration (targetID)
// up through its ancestors until it finds one that is itself a target,
// promoting the required state to Complete at every hop ("parent-walk
// promotion") and retagging the reason Member once any hop is taken — the
// demand is no longer "this exact declaration", it's "whatever contains
// it". A dependency on something with no tracked target anywhere in its
// ancestry is silently skipped as a missing declaration.
func (r *Resolver) followDependency(targetID depgraph.DeclID, dep depgraph.Dependency, reason *diagnostics.Reason) error {
	depDecl, ok := r.lookup.Lookup(targetID)
	if !ok {
		return nil
	}

	cur := depDecl
	state := dep.State
	kind := dep.Kind
	for cur != nil {
		if _, isTarget := r.targets[cur.ID()]; isTarget {
			break
		}
		cur = cur.Parent()
		state = depgraph.Complete
		kind = depgraph.Member
	}
	if cur == nil {
		return nil
	}

	return r.resolveOne(cur, state, kind, reason)
}

// emitOne invokes the run's EmitFunc, advances d's own recorded state, and
// tallies the emit into the run's stats. Any error the callback returns is
// wrapped as a diagnostics.EmitError and propagated unchanged.
func (r *Resolver) emitOne(d decltree.Declaration, s depgraph.State, reason *diagnostics.Reason) error {
	ctx := &ResolverContext{RunID: r.runID, Reason: reason, IgnoreErrors: r.cfg.IgnoreErrors}
	if err := r.emit(ctx, Target{Decl: d, State: s}, s); err != nil {
		return diagnostics.NewEmitError(r.runID, reason, err)
	}
	d.SetState(s)
	if s == depgraph.Complete {
		r.stats.Complete++
	} else {
		r.stats.Partial++
	}
	return nil
}

// Run is the package-level convenience most callers reach for: build a
// fresh Resolver tagged with a new run ID and resolve targets in one call.
func Run(lookup DeclLookup, targets []Target, emit EmitFunc, cfg Config) (diagnostics.RunStats, error) {
	r := New(lookup, emit, cfg, uuid.New())
	return r.Resolve(targets)
}

// ResolveDependencies names the same operation using the external-interface
// spelling: resolveDependencies(targets, emit). It runs with
// DefaultConfig(); callers who need IgnoreErrors should call Run directly.
func ResolveDependencies(lookup DeclLookup, targets []Target, emit EmitFunc) (diagnostics.RunStats, error) {
	return Run(lookup, targets, emit, DefaultConfig())
}
