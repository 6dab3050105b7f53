package diagnostics

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrorKind distinguishes the resolver's two fatal error cases. A third
// case, a dependency on a missing declaration, is a non-error silent skip
// and so has no ErrorKind of its own.
type ErrorKind int

const (
	CycleError ErrorKind = iota
	EmitError
)

func (k ErrorKind) String() string {
	if k == EmitError {
		return "EmitError"
	}
	return "CycleError"
}

// ResolutionError is raised when a demand at state s is made on a
// declaration already being resolved at state s' with s >= s', or when the
// caller's emit callback itself fails and that failure is propagated
// unchanged. RunID correlates this error with the resolver run that
// produced it — useful once more than one fixture or test case is
// resolving concurrently and their diagnostic output interleaves.
type ResolutionError struct {
	Kind   ErrorKind
	Reason *Reason
	RunID  uuid.UUID
	Cause  error // set only for EmitError, wraps the callback's own error
}

func NewCycleError(runID uuid.UUID, reason *Reason) *ResolutionError {
	return &ResolutionError{Kind: CycleError, Reason: reason, RunID: runID}
}

func NewEmitError(runID uuid.UUID, reason *Reason, cause error) *ResolutionError {
	return &ResolutionError{Kind: EmitError, Reason: reason, RunID: runID, Cause: cause}
}

func (e *ResolutionError) Error() string {
	switch e.Kind {
	case EmitError:
		return fmt.Sprintf("declorder[%s]: emit failed while resolving %s: %v", e.RunID, e.Reason, e.Cause)
	default:
		return fmt.Sprintf("declorder[%s]: unresolvable cycle: %s", e.RunID, e.Reason)
	}
}

func (e *ResolutionError) Unwrap() error { return e.Cause }
