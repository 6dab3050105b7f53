package resolver

import (
	"github.com/google/uuid"

	"github.com/declgraph/declorder/internal/diagnostics"
)

// ResolverContext is the read-only view of a run an EmitFunc receives
// alongside each emit decision: which run this is, why the emit is
// happening, and whether the run is tolerating cycles instead of failing on
// them. Reason is the chain the walk built to reach this emit, surfaced to
// the emitter rather than kept private.
type ResolverContext struct {
	RunID        uuid.UUID
	Reason       *diagnostics.Reason
	IgnoreErrors bool
}
